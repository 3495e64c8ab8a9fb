package client

import (
	"testing"

	"github.com/KwonOil/easyplanner/domain"
)

func ganttFixture(rows int) *domain.ChartData {
	data := &domain.ChartData{Datasets: []domain.ChartDataset{{}}}
	for i := 0; i < rows; i++ {
		label := string(rune('a' + i))
		data.Labels = append(data.Labels, label)
		data.Datasets[0].Data = append(data.Datasets[0].Data, domain.ChartEntry{
			X: [2]string{"2024-01-01T00:00", "2024-02-01T00:00"},
			Y: label,
		})
	}
	return data
}

func TestChartViewRedrawKeepsOneInstance(t *testing.T) {
	backend := &fakeBackend{chartResp: ganttFixture(3)}
	view := NewChartView(1, backend, nil)

	for i := 0; i < 5; i++ {
		view.Redraw()
	}

	if got := view.LiveInstances(); got != 1 {
		t.Errorf("live instances = %d, want 1 after repeated redraws", got)
	}
	if view.ShowingPlaceholder() {
		t.Error("placeholder shown despite data")
	}
}

func TestChartViewHeight(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{1, 150},
		{3, 150},
		{4, 160},
		{10, 400},
	}
	for _, tt := range tests {
		backend := &fakeBackend{chartResp: ganttFixture(tt.rows)}
		view := NewChartView(1, backend, nil)
		view.Redraw()
		if got := view.Current().Height; got != tt.want {
			t.Errorf("rows=%d: height = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestChartViewAxisBoundsFromProjectRow(t *testing.T) {
	backend := &fakeBackend{chartResp: ganttFixture(2)}
	view := NewChartView(1, backend, nil)
	view.Redraw()

	inst := view.Current()
	if inst.TimeMin != "2024-01-01T00:00" || inst.TimeMax != "2024-02-01T00:00" {
		t.Errorf("axis bounds = %q..%q", inst.TimeMin, inst.TimeMax)
	}
}

func TestChartViewEmptyDataShowsPlaceholder(t *testing.T) {
	backend := &fakeBackend{chartResp: ganttFixture(2)}
	view := NewChartView(1, backend, nil)
	view.Redraw()

	backend.chartResp = &domain.ChartData{}
	view.Redraw()

	if !view.ShowingPlaceholder() {
		t.Error("placeholder not shown for empty series")
	}
	if view.LiveInstances() != 0 {
		t.Error("stale instance survived an empty redraw")
	}
}

func TestChartViewErrorShowsPlaceholder(t *testing.T) {
	backend := &fakeBackend{chartErr: &BusinessError{Message: "권한이 없습니다."}}
	view := NewChartView(1, backend, nil)
	view.Redraw()

	if !view.ShowingPlaceholder() {
		t.Error("placeholder not shown after fetch error")
	}
	if view.LiveInstances() != 0 {
		t.Error("instance constructed despite error")
	}
}
