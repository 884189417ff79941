package main

import (
	"fmt"
	"log"
	"time"

	"eventstay/internal/config"
	"eventstay/internal/database"
	"eventstay/internal/domain"
	jwtsvc "eventstay/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type guest struct {
	email  string
	name   string
	ticket string
	status domain.TicketStatus
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// Children before parents so foreign keys hold on postgres.
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"bookings", "rooms", "hotels", "tickets", "ticket_types",
		"addresses", "enrollments", "sessions", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("cleanup %s failed: %v", table, err)
		}
	}

	// ================== TICKET TYPES ==================
	log.Println("Creating ticket types...")
	ticketTypes := map[string]*domain.TicketType{
		"online":     {Name: "Online", Price: 100, IsRemote: true},
		"presencial": {Name: "Presencial sem hotel", Price: 250},
		"hotel":      {Name: "Presencial com hotel", Price: 600, IncludesHotel: true},
	}
	for _, key := range []string{"online", "presencial", "hotel"} {
		if err := db.Create(ticketTypes[key]).Error; err != nil {
			log.Fatal(err)
		}
	}

	// ================== HOTELS ==================
	log.Println("Creating hotels and rooms...")
	hotels := []struct {
		name  string
		image string
		rooms int
	}{
		{"Driven Resort", "https://images.example.com/hotels/resort.jpg", 6},
		{"Driven Palace", "https://images.example.com/hotels/palace.jpg", 4},
		{"Driven World", "https://images.example.com/hotels/world.jpg", 3},
	}
	for _, h := range hotels {
		hotel := domain.Hotel{Name: h.name, Image: h.image}
		if err := db.Create(&hotel).Error; err != nil {
			log.Fatal(err)
		}
		for i := 0; i < h.rooms; i++ {
			room := domain.Room{
				Name:     fmt.Sprintf("%d", 101+i),
				Capacity: 1 + i%3,
				HotelID:  hotel.ID,
			}
			if err := db.Create(&room).Error; err != nil {
				log.Fatal(err)
			}
		}
	}

	// ================== GUESTS ==================
	log.Println("Creating guests...")
	guests := []guest{
		{"ana@eventstay.dev", "Ana Souza", "hotel", domain.TicketPaid},
		{"bruno@eventstay.dev", "Bruno Lima", "hotel", domain.TicketPaid},
		{"carla@eventstay.dev", "Carla Dias", "hotel", domain.TicketReserved},
		{"davi@eventstay.dev", "Davi Rocha", "online", domain.TicketPaid},
		{"elis@eventstay.dev", "Elis Costa", "presencial", domain.TicketPaid},
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hash, err := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	for i, g := range guests {
		user := domain.User{Email: g.email, PasswordHash: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal(err)
		}

		enrollment := domain.Enrollment{
			UserID:   user.ID,
			Name:     g.name,
			CPF:      fmt.Sprintf("000.000.000-%02d", i+10),
			Birthday: time.Date(1990+i, time.March, 10, 0, 0, 0, 0, time.UTC),
			Phone:    fmt.Sprintf("(21) 99999-00%02d", i),
			Address: &domain.Address{
				CEP:          "20040-020",
				Street:       "Avenida Rio Branco",
				City:         "Rio de Janeiro",
				State:        "RJ",
				Number:       fmt.Sprintf("%d", 100+i),
				Neighborhood: "Centro",
			},
		}
		if err := db.Create(&enrollment).Error; err != nil {
			log.Fatal(err)
		}

		ticket := domain.Ticket{
			TicketTypeID: ticketTypes[g.ticket].ID,
			EnrollmentID: enrollment.ID,
			Status:       g.status,
		}
		if err := db.Create(&ticket).Error; err != nil {
			log.Fatal(err)
		}

		token, err := j.GenerateToken(user.ID)
		if err != nil {
			log.Fatal(err)
		}
		if err := db.Create(&domain.Session{UserID: user.ID, Token: token}).Error; err != nil {
			log.Fatal(err)
		}

		log.Printf("guest=%s ticket=%s status=%s token=%s", g.email, ticketTypes[g.ticket].Name, g.status, token)
	}

	log.Println("Seed completed!")
	log.Println("All guests use password guest123; only ana and bruno may book rooms.")
}
