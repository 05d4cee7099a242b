package components

// TapInput collects taps for a bar until TapSystem consumes them.
type TapInput struct {
	Pressed bool
	Source  string
}
