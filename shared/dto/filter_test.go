package dto_test

import (
	"testing"

	"frontdesk/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "like filter wraps the value for substring matching",
			filter: dto.Filter{
				Field:    "room_type",
				Operator: dto.FilterOperatorLike,
				Value:    "Deluxe",
				Table:    "rooms",
			},
			wantClause: "LOWER(rooms.room_type) LIKE LOWER(:room_type) ",
			wantArgs:   map[string]any{"room_type": "%Deluxe%"},
		},
		{
			name: "eq filter",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "Available",
				Table:    "rooms",
			},
			wantClause: "rooms.status = :status",
			wantArgs:   map[string]any{"status": "Available"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "min_price",
				Field:    "price",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    500,
				Table:    "rooms",
			},
			wantClause: "rooms.price >= :min_price",
			wantArgs:   map[string]any{"min_price": 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_type",
				Operator: dto.FilterOperatorLike,
				Value:    "Deluxe",
				Table:    "rooms",
			},
			dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "Available",
				Table:    "rooms",
			},
		},
	}

	clause, args := group.GetWhereClause()

	expected := "(LOWER(rooms.room_type) LIKE LOWER(:room_type)  AND rooms.status = :status)"
	if clause != expected {
		t.Errorf("expected clause %q, got %q", expected, clause)
	}

	if args["room_type"] != "%Deluxe%" {
		t.Errorf("expected room_type arg to be %%Deluxe%%, got %v", args["room_type"])
	}

	if args["status"] != "Available" {
		t.Errorf("expected status arg to be Available, got %v", args["status"])
	}
}

func TestFilterGroup_GetWhereClauseEmpty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
