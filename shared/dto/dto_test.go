package dto_test

import (
	"testing"

	"lodge/shared/constant"
	"lodge/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "abc",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			wantWhere: "rooms.id = :id",
			wantArgs:  map[string]any{"id": "abc"},
		},
		{
			name: "less with arg name",
			filter: dto.Filter{
				ArgName:  "check_out",
				Field:    "check_in",
				Value:    "2024-06-05",
				Operator: dto.FilterOperatorLess,
			},
			wantWhere: "check_in < :check_out",
			wantArgs:  map[string]any{"check_out": "2024-06-05"},
		},
		{
			name: "plain query",
			filter: dto.Filter{
				Value:    "check_in < :check_out AND check_out > :check_in",
				Operator: dto.FilterPlainQuery,
			},
			wantWhere: "(check_in < :check_out AND check_out > :check_in)",
			wantArgs:  map[string]any{},
		},
		{
			name: "unknown operator",
			filter: dto.Filter{
				Field:    "id",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}

			for k, v := range tt.wantArgs {
				if args[k] != v {
					t.Errorf("args[%q] = %v, want %v", k, args[k], v)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "cancelled", Operator: dto.FilterOperatorNotEq},
		},
	}

	where, args := group.GetWhereClause()

	if where != "(room_id = :room_id AND status != :status)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["room_id"] != "r1" || args["status"] != "cancelled" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()
	if where != "" || len(args) != 0 {
		t.Errorf("expected empty clause, got %q %v", where, args)
	}
}

func TestQueryParams_Normalize(t *testing.T) {
	q := dto.QueryParams{}
	q.Normalize(true)

	if q.Page != constant.DefaultValuePage || q.Limit != constant.DefaultValueLimit {
		t.Errorf("unexpected paging defaults: %+v", q)
	}

	if q.SortBy != constant.DefaultValueSortBy || q.SortDir != constant.DefaultValueSortDir {
		t.Errorf("unexpected ordering defaults: %+v", q)
	}

	unpaged := dto.QueryParams{SortBy: "expense_date", SortDir: "DESC"}
	unpaged.Normalize(false)

	if unpaged.Page != 0 || unpaged.Limit != 0 {
		t.Errorf("Normalize(false) should not page: %+v", unpaged)
	}
}
