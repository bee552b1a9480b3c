package infrastructure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"trapezoid-integration/internal/domain"
)

// TextReportWriter writes the three-line estimate report. The bounds keep
// the reference program's %f form; the estimate precision is configurable.
type TextReportWriter struct {
	logger   *zap.Logger
	decimals int
}

func NewTextReportWriter(logger *zap.Logger, decimals int) *TextReportWriter {
	return &TextReportWriter{logger: logger, decimals: decimals}
}

func (w *TextReportWriter) WriteReport(out io.Writer, result domain.Result) error {
	writer := bufio.NewWriter(out)

	fmt.Fprintf(writer, "----- Numero de threads: %d -----\n", result.Workers)
	fmt.Fprintf(writer, "With n = %d trapezoids, our estimate\n", result.Trapezoids)

	estimate := strconv.FormatFloat(result.Estimate, 'f', w.decimals, 64)
	fmt.Fprintf(writer, "of the integral from %f to %f = %s\n",
		result.Lower, result.Upper, estimate)

	return writer.Flush()
}
