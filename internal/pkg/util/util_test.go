package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestCommentsLabel(t *testing.T) {
	cases := map[int64]string{
		0:   "0 Комментариев",
		1:   "1 Комментарий",
		2:   "2 Комментария",
		4:   "4 Комментария",
		5:   "5 Комментариев",
		11:  "11 Комментариев",
		12:  "12 Комментариев",
		14:  "14 Комментариев",
		21:  "21 Комментарий",
		22:  "22 Комментария",
		101: "101 Комментарий",
		111: "111 Комментариев",
		112: "112 Комментариев",
	}
	for count, want := range cases {
		assert.Equal(t, want, CommentsLabel(count), "count=%d", count)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		param     string
		total     int64
		wantPage  int
		wantPages int
	}{
		{"empty param", "", 10, 1, 4},
		{"not a number", "abc", 10, 1, 4},
		{"middle", "2", 10, 2, 4},
		{"out of range", "99", 10, 4, 4},
		{"zero", "0", 10, 4, 4},
		{"no rows", "3", 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.param, tt.total, 3)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, (tt.wantPage-1)*3, p.Offset())
		})
	}

	p := Paginate("2", 10, 3)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.False(t, Paginate("4", 10, 3).HasNext())
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "go-lang", Slugify("  Go   Lang "))
	assert.Equal(t, "привет-мир", Slugify("Привет, мир!"))
	assert.Equal(t, "a-b", Slugify("a - b"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" go ", "#Go", "", "django", "go."})
	assert.Equal(t, []string{"go", "django"}, got)
}

func TestValidationMessage(t *testing.T) {
	type payload struct {
		Title string `validate:"required"`
	}
	err := validator.New().Struct(payload{})
	msg, ok := ValidationMessage(err)
	assert.True(t, ok)
	assert.Contains(t, msg, "Title")

	_, ok = ValidationMessage(assert.AnError)
	assert.False(t, ok)
}
