package ports

// OptionStore is a persistent string key-value store for plugin options.
// Typed defaults are applied by callers.
//
//go:generate mockgen -source=option_store.go -destination=mocks/mock_option_store.go -package=mocks
type OptionStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// OptionStoreFactory opens the option store that lives at a path.
// The path comes from the site configuration, which is loaded after wiring.
type OptionStoreFactory interface {
	Open(path string) OptionStore
}
