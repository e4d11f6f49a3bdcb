package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"midnight", "00:00", 0, false},
		{"morning", "08:30", 510, false},
		{"last minute", "23:59", 1439, false},
		{"missing colon", "0830", 0, true},
		{"hour out of range", "24:00", 0, true},
		{"minute out of range", "12:60", 0, true},
		{"negative hour", "-1:00", 0, true},
		{"non numeric", "ab:cd", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeWindowValidate(t *testing.T) {
	assert.NoError(t, TimeWindow{Start: "09:00", End: "17:00"}.Validate())
	assert.NoError(t, TimeWindow{Start: "00:00", End: "23:59"}.Validate())

	assert.Error(t, TimeWindow{Start: "17:00", End: "09:00"}.Validate(), "end before start")
	assert.Error(t, TimeWindow{Start: "09:00", End: "09:00"}.Validate(), "zero-length window")
	assert.Error(t, TimeWindow{Start: "9am", End: "17:00"}.Validate())
	assert.Error(t, TimeWindow{Start: "09:00", End: ""}.Validate())
}

func TestTimeWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeWindow
		b    TimeWindow
		want bool
	}{
		{
			name: "partial overlap",
			a:    TimeWindow{Start: "08:00", End: "16:00"},
			b:    TimeWindow{Start: "15:00", End: "20:00"},
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    TimeWindow{Start: "08:00", End: "16:00"},
			b:    TimeWindow{Start: "16:00", End: "20:00"},
			want: false,
		},
		{
			name: "identical windows",
			a:    TimeWindow{Start: "09:00", End: "17:00"},
			b:    TimeWindow{Start: "09:00", End: "17:00"},
			want: true,
		},
		{
			name: "contained window",
			a:    TimeWindow{Start: "08:00", End: "20:00"},
			b:    TimeWindow{Start: "10:00", End: "12:00"},
			want: true,
		},
		{
			name: "disjoint windows",
			a:    TimeWindow{Start: "06:00", End: "09:00"},
			b:    TimeWindow{Start: "14:00", End: "18:00"},
			want: false,
		},
		{
			name: "one minute of overlap",
			a:    TimeWindow{Start: "08:00", End: "12:01"},
			b:    TimeWindow{Start: "12:00", End: "16:00"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestTimeWindowContains(t *testing.T) {
	day := TimeWindow{Start: "10:00", End: "22:00"}

	assert.True(t, day.Contains(TimeWindow{Start: "12:00", End: "18:00"}))
	assert.True(t, day.Contains(TimeWindow{Start: "10:00", End: "22:00"}), "bounds are inclusive")
	assert.False(t, day.Contains(TimeWindow{Start: "09:00", End: "12:00"}))
	assert.False(t, day.Contains(TimeWindow{Start: "18:00", End: "23:00"}))
}

func TestTimeWindowString(t *testing.T) {
	assert.Equal(t, "09:00-17:00", TimeWindow{Start: "09:00", End: "17:00"}.String())
}
