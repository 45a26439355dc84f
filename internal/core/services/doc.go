// Package services implements the driving ports on top of the driven ports.
//
//   - Runner: selects days from the catalog, loads their inputs and records each attempt
//   - HistoryService: reads and prunes recorded attempts
//   - SettingsService: maps config keys onto domain.AppSettings
package services
