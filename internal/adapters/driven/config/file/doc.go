// Package file stores configuration as a TOML document in the config directory.
//
// Nested tables are flattened to dot keys on Load ([fetch] year = 2020 is
// "fetch.year") and nested again on Save.
package file
