package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		hasTopic bool
		want     Intent
	}{
		{"price", "Paracetamol giá bao nhiêu?", false, IntentPrice},
		{"composition", "Thành phần của Aspirin là gì", false, IntentComposition},
		{"usage", "Thuốc này dùng cho triệu chứng nào", false, IntentUsage},
		{"overview", "Paracetamol", false, IntentOverview},
		{"deflect", "Tôi bị bệnh gì vậy?", false, IntentDeflect},
		{"deflect beats product name", "Paracetamol chữa được ung thư không", false, IntentDeflect},
		{"deflect beats price", "Chẩn đoán giúp tôi, giá bao nhiêu cũng được", true, IntentDeflect},
		{"follow-up with topic", "còn thuốc nào khác không", true, IntentFollowUp},
		{"follow-up without topic falls through", "còn thuốc nào khác không", false, IntentOverview},
		{"follow-up beats price", "thuốc khác giá rẻ hơn", true, IntentFollowUp},
		{"case-insensitive", "GIÁ bao nhiêu", false, IntentPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.raw, tt.hasTopic))
		})
	}
}
