package domain

// Essay описывает лабораторное испытание (ensayo).
type Essay struct {
	ID               int64
	Name             string
	Category         string
	IsDefaultRetilap bool
	IsDefaultRetie   bool
}

func NewEssay(name, category string, isDefaultRetilap, isDefaultRetie bool) *Essay {
	return &Essay{
		Name:             name,
		Category:         category,
		IsDefaultRetilap: isDefaultRetilap,
		IsDefaultRetie:   isDefaultRetie,
	}
}

// ProductEssay связывает продукт с применимым к нему испытанием.
type ProductEssay struct {
	ID        int64
	ProductID int64
	EssayID   int64
}
