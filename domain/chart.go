package domain

// Chart bar colors, one pair for the project row and one for task rows.
const (
	projectBarFill   = "rgba(54, 162, 235, 0.6)"
	projectBarBorder = "rgba(54, 162, 235, 1)"
	taskBarFill      = "rgba(75, 192, 192, 0.6)"
	taskBarBorder    = "rgba(75, 192, 192, 1)"
)

// ProjectLabelPrefix marks the project's own bar on the chart.
const ProjectLabelPrefix = "[프로젝트] "

// ChartEntry is one horizontal bar: X holds the [start, end] pair and Y the
// row label.
type ChartEntry struct {
	X [2]string `json:"x"`
	Y string    `json:"y"`
}

// ChartDataset is a Chart.js-shaped dataset.
type ChartDataset struct {
	Data            []ChartEntry `json:"data"`
	BackgroundColor []string     `json:"backgroundColor"`
	BorderColor     []string     `json:"borderColor"`
	BorderWidth     int          `json:"borderWidth"`
	BorderRadius    int          `json:"borderRadius"`
	BorderSkipped   bool         `json:"borderSkipped"`
}

// ChartData is the full gantt payload. The time-axis bounds are taken from
// the first entry of the first dataset, which is always the project row.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// BuildGanttData assembles the gantt series: the project bar first, then one
// bar per task that has both bounds. Tasks without a schedule are skipped.
func BuildGanttData(project *Project, tasks []Task) *ChartData {
	if project == nil {
		return &ChartData{}
	}

	dataset := ChartDataset{
		BorderWidth:  1,
		BorderRadius: 2,
	}

	projectLabel := ProjectLabelPrefix + project.Name
	labels := []string{projectLabel}
	dataset.Data = append(dataset.Data, ChartEntry{
		X: [2]string{project.StartDate, project.EndDate},
		Y: projectLabel,
	})
	dataset.BackgroundColor = append(dataset.BackgroundColor, projectBarFill)
	dataset.BorderColor = append(dataset.BorderColor, projectBarBorder)

	for i := range tasks {
		t := &tasks[i]
		if !t.HasSchedule() {
			continue
		}
		labels = append(labels, t.Name)
		dataset.Data = append(dataset.Data, ChartEntry{
			X: [2]string{t.StartDate, t.EndDate},
			Y: t.Name,
		})
		dataset.BackgroundColor = append(dataset.BackgroundColor, taskBarFill)
		dataset.BorderColor = append(dataset.BorderColor, taskBarBorder)
	}

	return &ChartData{
		Labels:   labels,
		Datasets: []ChartDataset{dataset},
	}
}
