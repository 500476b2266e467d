package intelligence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/llm"
)

// RoutineSchema declares the structured output requested for routines.
var RoutineSchema = &llm.Schema{
	Type: llm.TypeArray,
	Items: &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"time":     {Type: llm.TypeString, Description: "Start time of activity"},
			"activity": {Type: llm.TypeString, Description: "Description of what to do"},
			"duration": {Type: llm.TypeString, Description: "Duration in minutes or hours"},
			"category": {Type: llm.TypeString, Description: "Category like Deep Work, Rest, Movement, or Skill Acquisition"},
		},
		Required:         []string{"time", "activity", "duration", "category"},
		PropertyOrdering: []string{"time", "activity", "duration", "category"},
	},
}

// ValidateRoutine parses structured provider output into routine items.
// An absent payload or an empty array yields an empty routine. Any record
// lacking a required field as non-empty text rejects the whole batch with
// ErrInvalidRoutineFormat.
func ValidateRoutine(raw json.RawMessage) ([]domain.RoutineItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []domain.RoutineItem{}, nil
	}

	records, err := llm.ExtractJSON[[]map[string]any](string(trimmed), validateRoutineRecords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRoutineFormat, err)
	}

	items := make([]domain.RoutineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, domain.RoutineItem{
			Time:     rec["time"].(string),
			Activity: rec["activity"].(string),
			Duration: rec["duration"].(string),
			Category: rec["category"].(string),
		})
	}
	return items, nil
}

func validateRoutineRecords(records []map[string]any) error {
	for i, rec := range records {
		if rec == nil {
			return fmt.Errorf("entry %d is not an object", i)
		}
		for _, field := range RoutineSchema.Items.Required {
			v, ok := rec[field]
			if !ok {
				return fmt.Errorf("entry %d is missing %q", i, field)
			}
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("entry %d field %q is not text", i, field)
			}
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("entry %d field %q is empty", i, field)
			}
		}
	}
	return nil
}
