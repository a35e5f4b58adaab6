// export_test.go exports private functions for white-box testing.
package prober

// NewProberWithClient exports newProberWithClient for testing.
var NewProberWithClient = newProberWithClient
