// Package testing provides a harness for exercising headless components
// without a real host. A ComponentTester mounts a widget, pushes new
// configurations as update cycles, and exposes the rendered value for
// assertions.
package testing
