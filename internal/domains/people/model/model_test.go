package model

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"first page", 1, 10, 1, 10, 0},
		{"third page", 3, 25, 3, 25, 50},
		{"negative page", -4, 5, 1, 5, 0},
		{"negative limit", 2, -1, 2, 10, 10},
		{"limit capped", 2, 1000, 2, 100, 100},
		{"huge page", math.MaxInt, 10, math.MaxInt / 10, 10, (math.MaxInt/10 - 1) * 10},
		{"huge page at max limit", math.MaxInt, 100, math.MaxInt / 100, 100, (math.MaxInt/100 - 1) * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageRequest(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.GreaterOrEqual(t, p.Offset(), 0)
			assert.Equal(t, (p.Page-1)*p.Limit, p.Offset())
		})
	}
}

func TestPersonView_Validate(t *testing.T) {
	valid := PersonView{Name: "Ann", Surname: "Lee", Age: 30}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		view PersonView
	}{
		{"missing name", PersonView{Surname: "Lee", Age: 30}},
		{"missing surname", PersonView{Name: "Ann", Age: 30}},
		{"negative age", PersonView{Name: "Ann", Surname: "Lee", Age: -1}},
		{"age too high", PersonView{Name: "Ann", Surname: "Lee", Age: 151}},
		{"name too long", PersonView{Name: strings.Repeat("a", MaxNameLength+1), Surname: "Lee", Age: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.view.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestPersonView_NormalizeThenValidate(t *testing.T) {
	v := PersonView{Name: "   ", Surname: " Lee ", Age: 30}
	v.Normalize()

	assert.Equal(t, "Lee", v.Surname)
	assert.Error(t, v.Validate())
}

func TestProjection(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := Person{ID: 7, Name: "Ann", Surname: "Lee", Age: 30, CreatedAt: created}

	assert.Equal(t, PersonView{ID: 7, Name: "Ann", Surname: "Lee", Age: 30}, p.ToView())

	views := ToViews(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	in := PersonView{ID: 99, Name: "Ann", Surname: "Lee", Age: 30}
	rec := in.ToPerson(created)
	assert.Zero(t, rec.ID, "inbound id is ignored")
	assert.Equal(t, created, rec.CreatedAt)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("get: %w", ErrPersonNotFound)))
	assert.Equal(t, KindDuplicate, KindOf(fmt.Errorf("create: %w", ErrDuplicatePerson)))
	assert.Equal(t, KindValidation, KindOf(ErrInvalidID))
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("%w: %w", ErrInternal, errors.New("conn reset"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("anything else")))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(ErrPersonNotFound))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrDuplicatePerson))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrInvalidID))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(ErrInternal))

	assert.True(t, IsClientError(ErrPersonNotFound))
	assert.False(t, IsClientError(ErrInternal))
	assert.Equal(t, "DuplicateEntry", KindDuplicate.String())
}

func TestPersonRequest_ToView(t *testing.T) {
	age := int32(0)
	view, err := PersonRequest{ID: 3, Name: "Ann", Surname: "Lee", Age: &age}.ToView()
	require.NoError(t, err)
	assert.Equal(t, PersonView{ID: 3, Name: "Ann", Surname: "Lee", Age: 0}, view)

	_, err = PersonRequest{Name: "Ann", Surname: "Lee"}.ToView()
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "age is required")
}
