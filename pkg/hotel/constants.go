package hotel

// DateLayout is the fixed calendar date format used for all input and output.
const DateLayout = "2006-01-02"

const (
	operationBook   = "book"
	operationCancel = "cancel"
	operationSeed   = "seed"

	operationStatusOK    = "ok"
	operationStatusError = "error"

	priceSingleForints int64 = 50000
	priceDoubleForints int64 = 80000
)
