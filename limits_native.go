//go:build !(js && wasm)

package present

// restrictedRuntime is true when running inside a browser.
const restrictedRuntime = false
