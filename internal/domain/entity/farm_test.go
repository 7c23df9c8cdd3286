package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCropTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain list",
			input: "Wheat,Corn,Soybeans",
			want:  []string{"Wheat", "Corn", "Soybeans"},
		},
		{
			name:  "whitespace around tokens",
			input: " Wheat , Corn ,  Soybeans ",
			want:  []string{"Wheat", "Corn", "Soybeans"},
		},
		{
			name:  "empty tokens dropped",
			input: "Wheat,,  ,Corn",
			want:  []string{"Wheat", "Corn"},
		},
		{
			name:  "blank input",
			input: "",
			want:  nil,
		},
		{
			name:  "only separators",
			input: " , ,",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCropTypes(tt.input))
		})
	}
}

func TestJoinCropTypes_RoundTrip(t *testing.T) {
	crops := []string{"Wheat", "Corn", "Soybeans"}

	joined := JoinCropTypes(crops)
	assert.Equal(t, "Wheat, Corn, Soybeans", joined)
	assert.Equal(t, crops, ParseCropTypes(joined))
}
