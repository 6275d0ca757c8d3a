package ports

// Navigator pushes screens onto the app's navigation stack. The UI shell
// provides the real implementation; flows differ in how they treat a failed
// push (form submits propagate the error, the launch redirect logs it), so
// Push must report failures rather than swallow them.
type Navigator interface {
	Push(route string) error
}
