// export_test.go exports private functions for white-box testing.
package config

// NewLoaderWithFS exports newLoaderWithFS for testing.
var NewLoaderWithFS = newLoaderWithFS
