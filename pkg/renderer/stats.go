package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Primitives      int           // Leaf primitives in the scene
	BVH             core.BVHStats // Shape of the top level acceleration structure
	TotalSamples    int64         // Camera rays traced
	Duration        time.Duration // Wall clock render time
	MeanLuminance   float64       // Mean display luminance in [0,1]
	StdDevLuminance float64       // Standard deviation of display luminance
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// Table formats the statistics as a two column table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", s.Primitives)})
	table.Append([]string{"BVH nodes", fmt.Sprintf("%d (%d leaves, depth %d)", s.BVH.TotalNodes, s.BVH.LeafNodes, s.BVH.MaxDepth)})
	table.Append([]string{"Camera rays", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{"Rays per second", fmt.Sprintf("%.0f", s.SamplesPerSecond())})
	table.Append([]string{"Luminance", fmt.Sprintf("mean %.4f, stddev %.4f", s.MeanLuminance, s.StdDevLuminance)})
	table.SetFooter([]string{"Render time", s.Duration.String()})
	table.Render()
	return buf.String()
}

// CalculateLuminanceStats returns the mean and standard deviation of the
// per-pixel display luminance
func CalculateLuminanceStats(img *RenderedImage) (mean, stdDev float64) {
	n := img.Width * img.Height
	if n == 0 {
		return 0, 0
	}

	luminance := make([]float64, n)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.RGB(x, y)
			color := core.NewVec3(float64(r)/255, float64(g)/255, float64(b)/255)
			luminance[y*img.Width+x] = color.Luminance()
		}
	}

	if n == 1 {
		return luminance[0], 0
	}
	return stat.MeanStdDev(luminance, nil)
}
