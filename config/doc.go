// Package config holds driver connection settings: typed values that know
// whether they were set explicitly, endpoint address parsing with port
// ranges, and the key=value connection string format.
package config
