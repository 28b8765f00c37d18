package exitcode

const (
	Success          = 0
	UsageError       = 1
	ValidationFailed = 2
	PathError        = 3
)
