// Package config resolves revet's runtime configuration.
//
// Configuration comes from the process environment, with an optional .env
// file loaded from the working directory first. [Load] resolves everything
// once at startup and hands the result down by value; nothing else in the
// codebase reads environment variables. [WriteExampleEnv] produces the
// annotated template used by `revet setup`.
package config
