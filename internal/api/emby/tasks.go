package emby

import (
	"context"
	"math"
	"sort"

	"embyassist/internal/models"
	"embyassist/internal/timeutil"
)

// Task states with derivation meaning. State is an open string set: any
// value outside these passes through untouched and simply matches no
// derived view.
const (
	taskStateIdle       = "Idle"
	taskStateRunning    = "Running"
	taskStateCancelling = "Cancelling"

	taskStatusCompleted = "Completed"

	defaultCategory = "Unknown"
)

// ListScheduledTasks returns every scheduled task, normalized. Fails open
// to an empty list when the upstream listing is absent.
func (c *Client) ListScheduledTasks(ctx context.Context) []models.ScheduledTask {
	raw := c.fetchTasks(ctx)
	tasks := make([]models.ScheduledTask, 0, len(raw))
	for _, t := range raw {
		tasks = append(tasks, normalizeTask(t))
	}
	return tasks
}

// ListActiveTasks returns the tasks currently Running or Cancelling.
func (c *Client) ListActiveTasks(ctx context.Context) []models.ScheduledTask {
	tasks := make([]models.ScheduledTask, 0)
	for _, t := range c.fetchTasks(ctx) {
		if t.State == taskStateRunning || t.State == taskStateCancelling {
			tasks = append(tasks, normalizeTask(t))
		}
	}
	return tasks
}

// ListProcessing projects active tasks into the processing view. Progress
// is rounded to one decimal and defaults to 0; category and description
// never come back empty-handed as nulls. StartedAt is the last execution's
// start time: upstream does not report the current run's start, and that
// limitation is preserved rather than papered over.
func (c *Client) ListProcessing(ctx context.Context) []models.ProcessingItem {
	items := make([]models.ProcessingItem, 0)
	for _, t := range c.fetchTasks(ctx) {
		if t.State != taskStateRunning && t.State != taskStateCancelling {
			continue
		}
		category := t.Category
		if category == "" {
			category = defaultCategory
		}
		startedAt := ""
		if t.LastExecutionResult != nil {
			startedAt = t.LastExecutionResult.StartTimeUTC
		}
		items = append(items, models.ProcessingItem{
			ID:          t.ID,
			TaskName:    t.Name,
			State:       t.State,
			Progress:    math.Round(t.CurrentProgressPercentage*10) / 10,
			Category:    category,
			Description: t.Description,
			StartedAt:   startedAt,
		})
	}
	return items
}

// ListCompleted returns up to limit recently completed tasks: Idle state
// with a last execution that finished as "Completed". Tasks without a last
// execution record have simply never completed. The sort compares the raw
// end-time strings descending; upstream timestamps are ISO-8601 with
// uniform precision, so the lexicographic order matches chronological
// order.
func (c *Client) ListCompleted(ctx context.Context, limit int) []models.CompletedTask {
	completed := make([]models.CompletedTask, 0)
	for _, t := range c.fetchTasks(ctx) {
		if t.State != taskStateIdle || t.LastExecutionResult == nil {
			continue
		}
		last := t.LastExecutionResult
		if last.Status != taskStatusCompleted {
			continue
		}
		completed = append(completed, models.CompletedTask{
			Name:        t.Name,
			Category:    t.Category,
			Status:      last.Status,
			StartTime:   last.StartTimeUTC,
			EndTime:     last.EndTimeUTC,
			CompletedAt: timeutil.Format(last.EndTimeUTC),
			Duration:    timeutil.Duration(last.StartTimeUTC, last.EndTimeUTC),
		})
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].EndTime > completed[j].EndTime
	})

	if limit > 0 && len(completed) > limit {
		completed = completed[:limit]
	}
	return completed
}

// GetTask returns one scheduled task by id, or nil when it is absent.
func (c *Client) GetTask(ctx context.Context, taskID string) *models.ScheduledTask {
	if taskID == "" {
		return nil
	}
	var raw apiScheduledTask
	if apiErr := c.getJSON(ctx, "/ScheduledTasks/"+taskID, nil, &raw); apiErr != nil {
		return nil
	}
	task := normalizeTask(raw)
	return &task
}

func (c *Client) fetchTasks(ctx context.Context) []apiScheduledTask {
	var raw []apiScheduledTask
	if apiErr := c.getJSON(ctx, "/ScheduledTasks", nil, &raw); apiErr != nil {
		return nil
	}
	return raw
}

func normalizeTask(t apiScheduledTask) models.ScheduledTask {
	task := models.ScheduledTask{
		ID:              t.ID,
		Name:            t.Name,
		Category:        t.Category,
		State:           t.State,
		CurrentProgress: math.Round(t.CurrentProgressPercentage*10) / 10,
	}
	if t.LastExecutionResult != nil {
		task.LastExecution = &models.TaskResult{
			Status:    t.LastExecutionResult.Status,
			StartTime: t.LastExecutionResult.StartTimeUTC,
			EndTime:   t.LastExecutionResult.EndTimeUTC,
		}
	}
	return task
}
