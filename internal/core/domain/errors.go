package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidClickMode is returned when a right-click mode is neither "assets" nor "custom".
	ErrInvalidClickMode = zerr.New("invalid right-click mode, expected 'assets' or 'custom'")

	// ErrInvalidPresentation is returned when a presentation is neither "menu" nor "redirect".
	ErrInvalidPresentation = zerr.New("invalid presentation, expected 'menu' or 'redirect'")

	// ErrCustomURLRequired is returned when custom mode is selected without a custom URL.
	ErrCustomURLRequired = zerr.New("custom link URL is required when right-click mode is 'custom'")

	// ErrInvalidURL is returned when a URL field does not hold a usable URL.
	ErrInvalidURL = zerr.New("invalid URL")

	// ErrInvalidPayload is returned when a widget payload fails validation.
	ErrInvalidPayload = zerr.New("invalid widget payload")

	// ErrLogoNotFound is returned when no logo element could be located on the page.
	ErrLogoNotFound = zerr.New("logo element not found")

	// ErrDestinationMissing is returned when no right-click destination is configured.
	ErrDestinationMissing = zerr.New("no right-click destination configured")

	// ErrWidgetAlreadyAttached is returned when a widget instance is attached twice.
	ErrWidgetAlreadyAttached = zerr.New("widget is already attached")

	// ErrUnknownEvent is returned when a lifecycle event name is not recognized.
	ErrUnknownEvent = zerr.New("unknown lifecycle event")

	// ErrOptionStoreReadFailed is returned when the option store cannot be read.
	ErrOptionStoreReadFailed = zerr.New("failed to read option store")

	// ErrOptionStoreWriteFailed is returned when the option store cannot be written.
	ErrOptionStoreWriteFailed = zerr.New("failed to write option store")

	// ErrOptionStoreUnmarshalFailed is returned when the option store file is malformed.
	ErrOptionStoreUnmarshalFailed = zerr.New("failed to unmarshal option store")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file holds invalid values.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrPageParseFailed is returned when an HTML page cannot be parsed.
	ErrPageParseFailed = zerr.New("failed to parse HTML page")

	// ErrInjectionFailed is returned when the widget snippet cannot be rendered into a page.
	ErrInjectionFailed = zerr.New("failed to inject widget snippet")

	// ErrServerFailed is returned when the HTTP front stops with an error.
	ErrServerFailed = zerr.New("http server failed")

	// ErrWatcherFailed is returned when the theme watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start theme watcher")

	// ErrProbeFailed is returned by the CLI when a connectivity probe reports an error.
	ErrProbeFailed = zerr.New("connectivity probe failed")

	// ErrInvalidLogFormat is returned when --log-format names an unknown format.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected auto, pretty, text or json")
)
