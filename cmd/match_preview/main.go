package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"marg-ai/internal/config"
	"marg-ai/internal/db"
	"marg-ai/internal/domain"
	"marg-ai/internal/repository"
	"marg-ai/internal/service"
)

// Scenario describe un perfil de prueba y la carrera que debería quedar primera.
type Scenario struct {
	Name       string
	Tags       []string
	Stage      domain.EducationStage
	Major      string
	Pace       domain.StudyPace
	WantTopJob string
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	careers := service.DefaultCareers()
	if os.Getenv("CATALOG_SOURCE") == config.CatalogSourcePostgres {
		careers = loadPostgresCatalog(ctx)
	}
	catalog := service.NewCareerCatalog(careers)
	gaps := service.NewSkillGapAnalyzer(nil)

	scenarios := []Scenario{
		{
			Name:       "Perfil tecnológico puro",
			Tags:       []string{"technology", "technology", "technology", "technology"},
			Stage:      domain.StageAfter10th,
			Pace:       domain.PaceTenPlus,
			WantTopJob: "Software Engineer",
		},
		{
			Name:       "Negocios y comunicación",
			Tags:       []string{"business", "business", "communication", "communication"},
			Stage:      domain.StageAfter12th,
			Pace:       domain.PaceSixHours,
			WantTopJob: "Product Manager",
		},
		{
			Name:       "Creativo y social",
			Tags:       []string{"creative", "creative", "social", "social"},
			Stage:      domain.StageAfter12th,
			Pace:       domain.PaceFourHours,
			WantTopJob: "UX/UI Designer",
		},
		{
			Name:       "Graduado en computación sin quiz",
			Stage:      domain.StageGraduate,
			Major:      "Computer Science",
			Pace:       domain.PaceSixHours,
			WantTopJob: "Software Engineer",
		},
	}

	passed := 0
	total := len(scenarios)

	for _, sc := range scenarios {
		fmt.Printf("=== Ejecutando: %s ===\n", sc.Name)

		answers := make([]domain.QuizAnswer, 0, len(sc.Tags))
		for i, tag := range sc.Tags {
			answers = append(answers, domain.QuizAnswer{QuestionID: fmt.Sprintf("q%d", i+1), Tag: tag})
		}
		profile := service.AggregateAnswers(answers)
		attrs := domain.ProfileAttributes{EducationStage: sc.Stage, Major: sc.Major}

		recs := service.DefaultRecommendationEngine.Score(catalog.All(), profile, attrs)
		if len(recs) == 0 {
			fmt.Printf("FAIL [%s] catálogo vacío\n\n", sc.Name)
			continue
		}

		for i, rec := range recs {
			fmt.Printf("  %d. %-20s %3d%%  (interest=%d skills=%d academic=%d market=%d)\n",
				i+1, rec.Title, rec.MatchPercentage,
				rec.Breakdown.Interest, rec.Breakdown.Skills, rec.Breakdown.Academic, rec.Breakdown.Market)
		}

		top := recs[0]
		gap := gaps.Analyze(top.Career, attrs)
		roadmap := service.GenerateRoadmap(sc.Pace, top.RequiredSkills)
		fmt.Printf("  gap: strong=%s | improve=%s | missing=%s\n",
			strings.Join(gap.Strong, ", "), strings.Join(gap.Improve, ", "), strings.Join(gap.Missing, ", "))
		for _, phase := range roadmap.Phases {
			fmt.Printf("  fase %d: %s (%s)\n", phase.Phase, phase.Title, phase.Duration)
		}
		fmt.Printf("  timeline: %s\n", roadmap.EstimatedTimeline)

		if top.Title == sc.WantTopJob {
			fmt.Printf("PASS [%s] top=%s\n\n", sc.Name, top.Title)
			passed++
		} else {
			fmt.Printf("FAIL [%s] esperado=%s obtenido=%s\n\n", sc.Name, sc.WantTopJob, top.Title)
		}
	}

	fmt.Printf("Escenarios: %d/%d pasaron\n", passed, total)
	if passed != total {
		os.Exit(1)
	}
}

func loadPostgresCatalog(ctx context.Context) []domain.Career {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer pool.Close()

	listCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	careers, err := repository.NewPgCareerRepository(pool).List(listCtx)
	if err != nil {
		log.Fatalf("list careers: %v", err)
	}
	return careers
}
