package validation

import (
	"reflect"
	"testing"
)

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		status  string
		dueDate string
		want    []string
	}{
		{
			name:    "valid task",
			title:   "T",
			status:  "pending",
			dueDate: "2023-12-31",
			want:    nil,
		},
		{
			name:    "missing title",
			status:  "pending",
			dueDate: "2023-12-31",
			want:    []string{"Title is required"},
		},
		{
			name:    "missing status",
			title:   "T",
			dueDate: "2023-12-31",
			want:    []string{"Status is required"},
		},
		{
			name:   "missing due date",
			title:  "T",
			status: "pending",
			want:   []string{"Due date is required"},
		},
		{
			name:    "malformed due date",
			title:   "T",
			status:  "pending",
			dueDate: "not-a-date",
			want:    []string{"Due date must be a valid date"},
		},
		{
			name: "all fields missing, message order is fixed",
			want: []string{"Title is required", "Status is required", "Due date is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCreate(tt.title, tt.status, tt.dueDate)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateCreate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateReplace(t *testing.T) {
	// Правила полной замены совпадают с созданием
	if got := ValidateReplace("", "pending", "2023-12-31"); !reflect.DeepEqual(got, []string{"Title is required"}) {
		t.Errorf("ValidateReplace() = %v, want [Title is required]", got)
	}
	if got := ValidateReplace("T", "pending", "2024-01-15"); got != nil {
		t.Errorf("ValidateReplace() = %v, want nil", got)
	}
}

func TestValidatePartial(t *testing.T) {
	t.Run("status present", func(t *testing.T) {
		status := "completed"
		if got := ValidatePartial(&status); got != nil {
			t.Errorf("ValidatePartial() = %v, want nil", got)
		}
	})

	t.Run("status absent", func(t *testing.T) {
		got := ValidatePartial(nil)
		want := []string{"Status is required for update"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ValidatePartial() = %v, want %v", got, want)
		}
	})
}

func TestIsValidDate(t *testing.T) {
	valid := []string{
		"2023-12-31",
		"2024-01-15T10:30:00Z",
		"Sun, 31 Dec 2023 00:00:00 GMT",
		"Sun, 31 Dec 2023 00:00:00 +0300",
	}
	for _, v := range valid {
		if !IsValidDate(v) {
			t.Errorf("IsValidDate(%q) = false, want true", v)
		}
	}

	invalid := []string{"", "not-a-date", "31/12/2023", "2023-13-45"}
	for _, v := range invalid {
		if IsValidDate(v) {
			t.Errorf("IsValidDate(%q) = true, want false", v)
		}
	}
}
