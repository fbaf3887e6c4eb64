package seed

import (
	"context"

	"github.com/jimlawless/whereami"
	"github.com/luminotest/go-backend/internal/domain"
	"github.com/luminotest/go-backend/internal/usecase"
	"github.com/luminotest/go-backend/pkg/e"
	"github.com/luminotest/go-backend/pkg/logger"
)

// Seeder наполняет пустой каталог стартовыми продуктами и испытаниями.
// Повторный запуск пропускается по наличию продуктов.
type Seeder struct {
	productRepo usecase.ProductRepository
	essayRepo   usecase.EssayRepository
	logger      logger.Logger
}

func NewSeeder(productRepo usecase.ProductRepository, essayRepo usecase.EssayRepository, logger logger.Logger) *Seeder {
	return &Seeder{
		productRepo: productRepo,
		essayRepo:   essayRepo,
		logger:      logger,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if count > 0 {
		s.logger.Debugf("Catalog already seeded, skipping")
		return nil
	}

	s.logger.Infof("Seeding catalog with initial data...")

	for i, name := range accesorios {
		// Назначение флагов детерминировано по индексу:
		// наполнение воспроизводимо между окружениями
		product := domain.NewProduct(name, "Accesorios", nil,
			i%3 != 0, i%4 != 0, i%5 != 0)
		if _, err := s.productRepo.Create(ctx, product); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	for i, name := range ensayos {
		essay := domain.NewEssay(name, "Adhesion", i%2 == 0, i%3 == 0)
		if _, err := s.essayRepo.Create(ctx, essay); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	s.logger.Infof("Catalog seeded: %d products, %d essays", len(accesorios), len(ensayos))
	return nil
}

var accesorios = []string{
	"Aisladores en resina tipo poste",
	"Alfombras y / o tapetes aislantes (de la electricidad)",
	"Balasto Lámparas Fluorescentes Tubulares",
	"Balasto lámparas de alta intensidad de descarga",
	"Balastos",
	"Baterías (pilas) primaria de referencia 9V (6LR61/6F22)",
	"Baterías (pilas) primaria de referencia AAA",
	"Baterías (pilas) primaria de referencia AA",
	"Baterías (pilas) primaria de referencia C",
	"Baterías (pilas) primaria de referencia D",
	"Baterías (pilas) primaria de referencia N",
	"Bombillas",
	"Bombillas (E14)",
	"Bombillas (E40)",
	"Bombillas Fluorescentes",
	"Bombillas LED",
	"Cables y alambres conductores",
	"Calzado dieléctrico (botas de hule)",
	"Canalizaciones",
	"Cargadores vehículos sitio",
	"Casquillos y bases de bombillas",
	"Clavijas",
	"Clavijas de uso doméstico y similares",
	"Clavijas y Tomacorriente",
	"Drivers",
	"Drivers o Controladores LED",
	"Electrodomésticos y aparatos eléctricos similares",
	"Guantes dieléctricos",
	"Interruptores automáticos (Breakers)",
	"Interruptores manuales",
	"Luminarias",
	"Luminarias LED",
	"Luminarias de Emergencia",
	"Lámparas",
	"Lámparas LED",
	"Lámparas fluorescentes",
	"Mangas dieléctricas",
	"Mantas aislantes",
	"Paneles fotovoltaicos",
	"Portalámparas",
	"Productos eléctricos",
	"Tomacorriente",
	"Tomacorrientes portátiles",
	"Tubos LED G13 y G5",
}

var ensayos = []string{
	"Adhesión por el método de cinta",
	"Análisis dimensional",
	"Área de la sección transversal del conductor",
	"Aumento de temperatura",
	"Calentamiento y/o Aumento de temperatura",
	"Cámara salina (1 hora)",
	"Capacidad de apertura y cierre",
	"Características Eléctricas y Flujo Luminoso",
	"Distancias de aislamiento y fuga",
	"Endurancia",
	"Evaluación de la durabilidad del rotulado",
	"Fotometría",
	"Grado IP (Hermeticidad)",
	"Impedancia eléctrica",
	"Medición de resistencia a tierra",
	"Operación normal",
	"Protección Contra Choque Eléctrico",
	"Quemador de aguja",
	"Resistencia a la Corrosión",
	"Resistencia a la Humedad",
	"Resistencia de Aislamiento",
	"Rigidez Dieléctrica",
	"Resistencia al Hilo Incandescente",
	"Resistencia al Impacto (IK)",
	"Resistencia de aislamiento a tensión de impulso",
	"Tensión de circuito abierto",
	"Verificación de dimensiones",
}
