package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	snapshot "github.com/go-echarts/snapshot-chromedp/render"
)

// StdoutTarget is the sentinel output name that streams the chart to stdout.
const StdoutTarget = "-"

const outputFilePerm = 0o644

// Chart is the rendered artifact handed to Write. Every go-echarts chart
// satisfies it.
type Chart interface {
	Render(w io.Writer) error
	RenderContent() []byte
}

// Write renders a chart to the target: "-" streams HTML to stdout, a .png
// target goes through the headless-chrome snapshot step, anything else gets
// the HTML page. A failed render leaves no partial artifact behind.
func Write(c Chart, target string) error {
	if target == StdoutTarget {
		err := c.Render(os.Stdout)
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}

		return nil
	}

	if strings.EqualFold(filepath.Ext(target), ".png") {
		err := snapshot.MakeChartSnapshot(c.RenderContent(), target)
		if err != nil {
			return fmt.Errorf("render png: %w", err)
		}

		return nil
	}

	var buf strings.Builder

	err := c.Render(&buf)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	err = os.WriteFile(target, []byte(buf.String()), outputFilePerm)
	if err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	return nil
}
