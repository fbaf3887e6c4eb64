package domain

// Product описывает позицию каталога, к которой может быть привязана котировка.
// Каталог неизменяем после первоначального наполнения.
type Product struct {
	ID        int64
	Name      string
	Category  string
	Titulo    *string // группировка по título, опциональна
	IsRetilap bool
	IsRetie   bool
	IsOtros   bool
}

func NewProduct(name, category string, titulo *string, isRetilap, isRetie, isOtros bool) *Product {
	return &Product{
		Name:      name,
		Category:  category,
		Titulo:    titulo,
		IsRetilap: isRetilap,
		IsRetie:   isRetie,
		IsOtros:   isOtros,
	}
}

// MatchesRegulation сообщает, применим ли продукт к типу регламента.
// Неизвестное значение не фильтрует ничего.
func (p *Product) MatchesRegulation(regulationType string) bool {
	switch regulationType {
	case "RETILAP":
		return p.IsRetilap
	case "RETIE":
		return p.IsRetie
	case "OTROS":
		return p.IsOtros
	default:
		return true
	}
}
