package converter

// ProductRedisModel — кэшируемое представление продукта каталога.
type ProductRedisModel struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Titulo    *string `json:"titulo"`
	IsRetilap bool    `json:"is_retilap"`
	IsRetie   bool    `json:"is_retie"`
	IsOtros   bool    `json:"is_otros"`
}

// EssayRedisModel — кэшируемое представление испытания каталога.
type EssayRedisModel struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	IsDefaultRetilap bool   `json:"is_default_retilap"`
	IsDefaultRetie   bool   `json:"is_default_retie"`
}
