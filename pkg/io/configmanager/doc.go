// Package configmanager loads the ecrdocs configuration.
//
// Values are resolved with the precedence defaults < ecrdocs.yaml <
// environment variables < command-line flags. A .env file in the working
// directory is loaded first and never overrides variables that are already
// set in the environment.
package configmanager
