// Package testutil holds helpers shared by devmk's tests: an isolated
// environment (no user config, logs under a temp dir) and small file helpers.
package testutil
