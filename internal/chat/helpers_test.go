package chat

import (
	"PharmaCS/entity"
	"io"
	"log/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(id, name, ingredient, uses string, symptoms []string, price int) entity.Product {
	return entity.Product{
		Id:               id,
		Name:             name,
		ActiveIngredient: ingredient,
		Dosage:           "500mg",
		Uses:             uses,
		Symptoms:         symptoms,
		Price:            price,
		Manufacturer:     "Traphaco",
		SideEffects:      []string{"buồn nôn"},
		Instructions:     "Uống theo chỉ dẫn",
	}
}

// testCatalog mirrors the shape of the shipped catalog: three analgesics,
// the osteoporosis set, one antacid and one antihistamine.
func testCatalog() []entity.Product {
	return []entity.Product{
		testProduct("SP001", "Paracetamol", "Paracetamol", "Giảm đau, hạ sốt",
			[]string{"đau đầu", "sốt", "đau răng"}, 25000),
		testProduct("SP002", "Ibuprofen", "Ibuprofen", "Giảm đau, kháng viêm, hạ sốt",
			[]string{"đau đầu", "viêm khớp"}, 35000),
		testProduct("SP003", "Aspirin", "Acetylsalicylic acid", "Giảm đau, hạ sốt, chống kết tập tiểu cầu",
			[]string{"đau đầu", "sốt nhẹ"}, 30000),
		testProduct("SP004", "Omeprazole", "Omeprazole", "Điều trị trào ngược, viêm loét dạ dày",
			[]string{"ợ nóng", "đau dạ dày"}, 45000),
		testProduct("SP007", "Alendronate", "Alendronic acid", "Điều trị loãng xương ở phụ nữ sau mãn kinh",
			[]string{"loãng xương"}, 220000),
		testProduct("SP008", "Risedronate", "Risedronic acid", "Phòng và điều trị loãng xương",
			[]string{"loãng xương"}, 250000),
		testProduct("SP009", "Calcium Carbonate", "Calcium carbonate", "Bổ sung canxi, hỗ trợ điều trị loãng xương",
			[]string{"loãng xương", "thiếu canxi"}, 85000),
		testProduct("SP010", "Vitamin D3", "Cholecalciferol", "Hỗ trợ hấp thu canxi, phòng loãng xương",
			[]string{"loãng xương"}, 95000),
		testProduct("SP011", "Loratadine", "Loratadine", "Điều trị viêm mũi dị ứng, mề đay",
			[]string{"dị ứng", "hắt hơi"}, 28000),
	}
}

func productsCopy(products []entity.Product) []entity.Product {
	return append([]entity.Product(nil), products...)
}

func productNames(products []entity.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}
