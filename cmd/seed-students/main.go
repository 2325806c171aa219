package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/daheemath/mathtutor-backend/internal/config"
	"github.com/daheemath/mathtutor-backend/internal/database"
	"github.com/daheemath/mathtutor-backend/internal/logger"
	"github.com/daheemath/mathtutor-backend/internal/model"
	"github.com/daheemath/mathtutor-backend/internal/repository"
)

// Seeds a batch of student accounts for local development. Every account
// gets the same password: "student1234".
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	profileRepo := repository.NewProfileRepository(pool)

	names := []string{
		"김민준", "이서연", "박도윤", "최지우", "정하준",
		"강서아", "조시우", "윤지아", "장예준", "임하은",
		"한주원", "오수아", "서지호", "신아린", "권은우",
		"황채원", "안도현", "송유나", "전시원", "홍지안",
	}
	schools := []string{
		"대치중학교", "역삼중학교", "도곡중학교", "숙명여자중학교", "단국대학교부속중학교",
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("student1234"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	fmt.Printf("=== Seeding %d Students ===\n", len(names))

	created := 0
	for i, name := range names {
		school := schools[i%len(schools)]
		phone := fmt.Sprintf("010-1234-%04d", i)
		birthDate := time.Date(2009+(i%3), time.Month(1+i%12), 1+i%28, 0, 0, 0, 0, time.Local)

		profile := &model.Profile{
			Email:        fmt.Sprintf("student%02d@example.com", i+1),
			PasswordHash: string(hashedPassword),
			Name:         name,
			Phone:        &phone,
			School:       &school,
			BirthDate:    &birthDate,
			Role:         model.RoleStudent,
		}

		if err := profileRepo.Create(ctx, profile); err != nil {
			// Re-running the seeder hits the email unique index; skip.
			if strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "duplicate key") {
				fmt.Printf("Skipping %s (already exists)\n", profile.Email)
				continue
			}
			log.Fatal().Err(err).Str("email", profile.Email).Msg("Failed to create student")
		}
		created++
	}

	fmt.Printf("\nDone. Created %d students (password: student1234)\n", created)
}
