package renderer

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"watchface-monitor/internal/models"
	"watchface-monitor/internal/modules/devices"
	"watchface-monitor/internal/modules/style"

	"go.uber.org/zap"
)

// Placeholder is written instead of a report when no device has items.
const Placeholder = "<h3>No new watch faces today</h3>"

const timestampLayout = "2006-01-02 15:04"

// FormatTimestamp renders a millisecond epoch timestamp in loc.
// A nil or zero timestamp yields "N/A".
func FormatTimestamp(ts *int64, loc *time.Location) string {
	if ts == nil || *ts == 0 {
		return "N/A"
	}
	return time.UnixMilli(*ts).In(loc).Format(timestampLayout)
}

// Renderer builds the HTML email body. It implements pipeline.Stage,
// turning a models.Report into the document to persist.
type Renderer struct {
	devices *devices.Registry
	styles  *style.Calculator
	loc     *time.Location
	now     func() time.Time
	tmpl    *template.Template
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLocation sets the time zone used for dates in the report.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) { r.loc = loc }
}

// WithClock replaces the clock used for the report date.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New creates a Renderer for the given device table. Dates default to local time.
func New(reg *devices.Registry, opts ...Option) *Renderer {
	r := &Renderer{
		devices: reg,
		styles:  style.NewCalculator(reg),
		loc:     time.Local,
		now:     time.Now,
		tmpl:    template.Must(template.New("report").Parse(reportTemplate)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type card struct {
	Name      string
	Nickname  string
	Preview   string
	Updated   string
	Downloads int64
	Views     int64
}

type section struct {
	ID         string
	Name       string
	ImageStyle string
	Cards      []card
}

type page struct {
	Date     string
	Sections []section
}

// Render builds the report document. Devices without items are skipped;
// the rest appear in report order.
//
// Returns:
//   - The document and true, or "" and false when no device has any item.
//   - An error if the template fails to execute.
func (r *Renderer) Render(report models.Report) (string, bool, error) {
	p := page{Date: r.now().In(r.loc).Format("2006-01-02")}

	for _, res := range report.Results {
		if len(res.Items) == 0 {
			continue
		}
		s := section{
			ID:         res.DeviceID,
			Name:       r.devices.DisplayName(res.DeviceID),
			ImageStyle: r.styles.For(res.DeviceID).String(),
			Cards:      make([]card, 0, len(res.Items)),
		}
		for _, item := range res.Items {
			s.Cards = append(s.Cards, card{
				Name:      item.Name,
				Nickname:  item.Nickname,
				Preview:   item.Preview,
				Updated:   FormatTimestamp(item.UpdatedAt, r.loc),
				Downloads: item.DownloadTimes,
				Views:     item.Views,
			})
		}
		p.Sections = append(p.Sections, s)
	}

	if len(p.Sections) == 0 {
		return "", false, nil
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, p); err != nil {
		return "", false, fmt.Errorf("execute report template: %w", err)
	}
	return buf.String(), true, nil
}

// Execute renders the report received as input, substituting Placeholder
// when there is nothing to report.
//
// Parameters:
//   - ctx: Context for cancellation.
//   - input: The models.Report produced by the fetch stage.
//   - logger: Logger for the outcome.
//
// Returns:
//   - The document to persist as a string.
//   - An error if the input has the wrong type, rendering fails or the
//     context is canceled.
func (r *Renderer) Execute(ctx context.Context, input interface{}, logger *zap.Logger) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report, ok := input.(models.Report)
	if !ok {
		return nil, fmt.Errorf("invalid input type %T, expected models.Report", input)
	}

	doc, ok, err := r.Render(report)
	if err != nil {
		logger.Error("report rendering failed", zap.Error(err))
		return nil, err
	}
	if !ok {
		logger.Info("no new items for any device, using placeholder")
		return Placeholder, nil
	}

	items := 0
	for _, res := range report.Results {
		items += len(res.Items)
	}
	logger.Info("report generated", zap.Int("items", items), zap.Int("bytes", len(doc)))
	return doc, nil
}
