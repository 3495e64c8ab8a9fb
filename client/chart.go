package client

import (
	"sync"

	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/domain"
)

// ChartPlaceholder replaces the chart area when there is nothing to draw.
const ChartPlaceholder = "차트를 표시할 데이터가 없습니다."

// ChartInstance is one constructed gantt render. TimeMin and TimeMax are the
// axis bounds, taken from the project row, which is always the first entry of
// the first dataset.
type ChartInstance struct {
	Data    *domain.ChartData
	Height  int
	TimeMin string
	TimeMax string
}

// ChartSource is the slice of Backend the chart needs.
type ChartSource interface {
	ChartData(projectID int64) (*domain.ChartData, error)
}

// ChartView owns the single live chart instance. Every redraw fetches fresh
// data and replaces the instance atomically, destroying the old render first
// so two canvases never coexist.
type ChartView struct {
	projectID int64
	source    ChartSource
	logger    *zap.Logger

	mu          sync.Mutex
	current     *ChartInstance
	placeholder bool
	constructed int
	destroyed   int
}

func NewChartView(projectID int64, source ChartSource, logger *zap.Logger) *ChartView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartView{
		projectID: projectID,
		source:    source,
		logger:    logger,
	}
}

// Redraw fetches the series and replaces the live instance. Empty data and
// errors of either class tear down any existing render and leave the
// placeholder; errors are logged, never alerted.
func (v *ChartView) Redraw() {
	data, err := v.source.ChartData(v.projectID)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil || len(data.Labels) == 0 {
		if err != nil {
			v.logger.Warn("chart data fetch failed", zap.Error(err))
		}
		v.destroyLocked()
		v.placeholder = true
		return
	}

	rows := len(data.Labels)
	height := rows * 40
	if height < 150 {
		height = 150
	}

	instance := &ChartInstance{
		Data:   data,
		Height: height,
	}
	if len(data.Datasets) > 0 && len(data.Datasets[0].Data) > 0 {
		instance.TimeMin = data.Datasets[0].Data[0].X[0]
		instance.TimeMax = data.Datasets[0].Data[0].X[1]
	}

	v.destroyLocked()
	v.current = instance
	v.constructed++
	v.placeholder = false
}

func (v *ChartView) destroyLocked() {
	if v.current != nil {
		v.current = nil
		v.destroyed++
	}
}

// Current returns the live instance, or nil when the placeholder is shown.
func (v *ChartView) Current() *ChartInstance {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// ShowingPlaceholder reports whether the chart area shows the empty message.
func (v *ChartView) ShowingPlaceholder() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.placeholder
}

// LiveInstances is 1 while a render is mounted, 0 otherwise.
func (v *ChartView) LiveInstances() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current != nil {
		return 1
	}
	return 0
}
