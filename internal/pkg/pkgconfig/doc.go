// Package pkgconfig reads service settings.
//
// Values come from a YAML file loaded by Viper and can be overridden by
// environment variables, where "server.address.http" maps to
// SERVER_ADDRESS_HTTP. LoadDotEnv seeds the environment from .env files
// during local runs. Callers depend on the Config interface only.
package pkgconfig
