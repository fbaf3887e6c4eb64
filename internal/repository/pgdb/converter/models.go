package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	Titulo    *string `db:"titulo"`
	IsRetilap bool    `db:"is_retilap"`
	IsRetie   bool    `db:"is_retie"`
	IsOtros   bool    `db:"is_otros"`
}

// EssayModel представляет запись таблицы essays в PostgreSQL.
type EssayModel struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	Category         string `db:"category"`
	IsDefaultRetilap bool   `db:"is_default_retilap"`
	IsDefaultRetie   bool   `db:"is_default_retie"`
}

// CartItemModel представляет запись таблицы cart_items в PostgreSQL.
// Списки испытаний хранятся как JSON-текст.
type CartItemModel struct {
	ID          int64      `db:"id"`
	UserID      string     `db:"user_id"`
	ProductID   *int64     `db:"product_id"`
	ProductName *string    `db:"product_name"`
	EssayIDs    string     `db:"essay_ids"`
	EssayNames  string     `db:"essay_names"`
	Quantity    int        `db:"quantity"`
	CreatedAt   *time.Time `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// QuotationModel представляет запись таблицы quotations в PostgreSQL.
type QuotationModel struct {
	ID             int64     `db:"id"`
	UserID         string    `db:"user_id"`
	Type           string    `db:"type"`
	ReglamentoType *string   `db:"reglamento_type"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID                string     `db:"id"`
	Email             *string    `db:"email"`
	FirstName         *string    `db:"first_name"`
	LastName          *string    `db:"last_name"`
	Organizacion      *string    `db:"organizacion"`
	Direccion         *string    `db:"direccion"`
	Telefono          *string    `db:"telefono"`
	Ciudad            *string    `db:"ciudad"`
	Moneda            *string    `db:"moneda"`
	MoneySymbol       *string    `db:"money_symbol"`
	QuotationsCount   int64      `db:"quotations_count"`
	InteractionsCount int64      `db:"interactions_count"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	QuotationID int64      `db:"quotation_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
