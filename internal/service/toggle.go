package service

import (
	"Inkwell/internal/pkg/metrics"
	"Inkwell/internal/repository"
	"errors"
)

// ToggleResult toggle 操作的结果
type ToggleResult int

const (
	Removed ToggleResult = iota
	Created
)

func (r ToggleResult) String() string {
	if r == Created {
		return "created"
	}
	return "removed"
}

func toggleResult(created bool) ToggleResult {
	if created {
		return Created
	}
	return Removed
}

// finishToggle 记录指标并把联合主键冲突转换为可重试的 409
func finishToggle(kind string, created bool, err error) (ToggleResult, error) {
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.ObserveToggle(kind, "conflict")
			return Removed, ErrToggleConflict
		}
		return Removed, err
	}
	result := toggleResult(created)
	metrics.ObserveToggle(kind, result.String())
	return result, nil
}

const followKind = "follow"
