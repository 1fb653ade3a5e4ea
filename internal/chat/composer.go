package chat

import (
	"PharmaCS/entity"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	deflectMessage = "Xin lỗi, tôi không thể tư vấn chẩn đoán hay bệnh lý. " +
		"Vui lòng liên hệ dược sĩ của nhà thuốc qua hotline 1900 6035 để được hỗ trợ trực tiếp."
	notFoundMessage = "Xin lỗi, tôi không tìm thấy sản phẩm phù hợp với yêu cầu của bạn. " +
		"Vui lòng liên hệ hotline 1900 6035 để được dược sĩ tư vấn."
	allShownMessage = "Tôi đã giới thiệu tất cả các sản phẩm liên quan đến chủ đề này. " +
		"Bạn cần tư vấn thêm, vui lòng liên hệ hotline 1900 6035."
	contactFooter = "Để được tư vấn chi tiết hơn, vui lòng liên hệ hotline 1900 6035."
)

// Composer renders the chosen template against the matched products. It is
// a pure function of its inputs and is safe for concurrent use.
type Composer struct {
	printer *message.Printer
}

func NewComposer() *Composer {
	return &Composer{printer: message.NewPrinter(language.Vietnamese)}
}

// FormatPrice renders an integer VND amount with locale separators.
func (c *Composer) FormatPrice(price int) string {
	return c.printer.Sprintf("%dđ", price)
}

// Compose renders the reply for a turn. When several products matched and
// the raw question names one of the known conditions, the first three are
// listed; otherwise the first match is rendered with the intent's template.
func (c *Composer) Compose(intent Intent, raw string, matched []entity.Product) string {
	if len(matched) == 0 {
		return notFoundMessage
	}
	if len(matched) > 1 && containsAny(strings.ToLower(raw), conditionKeywords) {
		return c.composeList(matched)
	}

	p := matched[0]
	switch intent {
	case IntentPrice:
		return c.composePrice(p)
	case IntentComposition:
		return c.composeComposition(p)
	case IntentUsage:
		return c.composeUsage(p)
	}
	return c.composeOverview(p)
}

func (c *Composer) composeList(matched []entity.Product) string {
	if len(matched) > maxRemembered {
		matched = matched[:maxRemembered]
	}

	var b strings.Builder
	b.WriteString("Bạn có thể tham khảo các sản phẩm sau:\n")
	for i, p := range matched {
		fmt.Fprintf(&b, "%d. %s (%s %s)\n   Giá: %s\n   Công dụng: %s\n",
			i+1, p.Name, p.ActiveIngredient, p.Dosage, c.FormatPrice(p.Price), p.Uses)
	}
	b.WriteString(contactFooter)
	return b.String()
}

func (c *Composer) composePrice(p entity.Product) string {
	return fmt.Sprintf("💊 %s (%s %s)\nGiá: %s\nNhà sản xuất: %s",
		p.Name, p.ActiveIngredient, p.Dosage, c.FormatPrice(p.Price), p.Manufacturer)
}

func (c *Composer) composeComposition(p entity.Product) string {
	return fmt.Sprintf("💊 %s\nHoạt chất: %s\nHàm lượng: %s",
		p.Name, p.ActiveIngredient, p.Dosage)
}

func (c *Composer) composeUsage(p entity.Product) string {
	return fmt.Sprintf("💊 %s\nCông dụng: %s\nTriệu chứng: %s\nCách dùng: %s",
		p.Name, p.Uses, strings.Join(p.Symptoms, ", "), p.Instructions)
}

func (c *Composer) composeOverview(p entity.Product) string {
	return fmt.Sprintf(
		"💊 %s\nGiá: %s\nCông dụng: %s\nTriệu chứng: %s\nTác dụng phụ: %s\nCách dùng: %s\nNhà sản xuất: %s",
		p.Name, c.FormatPrice(p.Price), p.Uses,
		strings.Join(p.Symptoms, ", "), strings.Join(p.SideEffects, ", "),
		p.Instructions, p.Manufacturer)
}
