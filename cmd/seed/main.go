package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"housequay/internal/database"
	"housequay/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "housequay.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payment_sessions")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM conversations")
	db.Exec("DELETE FROM reports")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM blocked_dates")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@housequay.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Site Admin",
		IsVerified:   true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@housequay.com / admin123")

	boaters := []domain.User{}
	boaterEmails := []string{"sam@sailmail.com", "rivka@tideline.io", "jordan@portside.net"}
	for i, email := range boaterEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("boater123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleBoater,
			Name:         fmt.Sprintf("Boater %d", i+1),
			Phone:        fmt.Sprintf("+1 206 555 01%02d", i+10),
			IsVerified:   true,
		}
		db.Create(&u)
		boaters = append(boaters, u)
	}

	hosts := []domain.User{}
	hostEmails := []string{"elena@lakesidejetty.com", "marco@bayfrontslips.com", "june@harborhomes.com"}
	for i, email := range hostEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("host123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleHost,
			Name:         fmt.Sprintf("Host %d", i+1),
			IsHost:       true,
			IsVerified:   true,
		}
		db.Create(&u)
		hosts = append(hosts, u)
	}
	hosts[0].IsSuperhost = true
	db.Save(&hosts[0])

	// ================== LISTINGS ==================
	log.Println("Creating listings...")
	cities := []struct {
		city, state string
	}{
		{"Seattle", "WA"},
		{"San Diego", "CA"},
		{"Annapolis", "MD"},
		{"Sausalito", "CA"},
		{"Miami", "FL"},
	}
	sizes := []domain.BoatSizeCategory{
		domain.BoatSizeSmall, domain.BoatSizeMedium, domain.BoatSizeLarge, domain.BoatSizeYacht,
	}

	listings := make([]domain.Listing, 0, 6)
	for i := 0; i < 6; i++ {
		host := hosts[i%len(hosts)]
		loc := cities[i%len(cities)]
		l := domain.Listing{
			HostID:         host.ID,
			Title:          fmt.Sprintf("Private jetty %d with shore power", i+1),
			Description:    "Quiet residential dock with easy channel access.",
			Address:        fmt.Sprintf("%d Waterfront Ave", 100+i),
			City:           loc.city,
			State:          loc.state,
			MaxBoatLength:  25 + float64(rand.Intn(40)),
			BoatSize:       sizes[rand.Intn(len(sizes))],
			Depth:          6 + float64(rand.Intn(10)),
			Width:          12 + float64(rand.Intn(8)),
			PricePerNight:  60 + float64(rand.Intn(120)),
			CleaningFee:    float64(rand.Intn(4)) * 10,
			ServiceFeeRate: 0.12,
			InstantBook:    i%2 == 0,
			MinimumStay:    1 + rand.Intn(3),
			Status:         domain.ListingActive,
			IsActive:       true,
		}
		db.Create(&l)
		listings = append(listings, l)
	}

	// One listing still waiting on moderation
	pending := domain.Listing{
		HostID:         hosts[2].ID,
		Title:          "New slip behind the boathouse",
		Address:        "9 Pier Lane",
		City:           "Portland",
		State:          "OR",
		MaxBoatLength:  30,
		BoatSize:       domain.BoatSizeMedium,
		PricePerNight:  75,
		ServiceFeeRate: 0.12,
		MinimumStay:    1,
		Status:         domain.ListingPendingReview,
		IsActive:       true,
	}
	db.Create(&pending)

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	statuses := []domain.BookingStatus{
		domain.BookingPending, domain.BookingConfirmed, domain.BookingCompleted,
	}
	for i := 0; i < 10; i++ {
		l := listings[rand.Intn(len(listings))]
		guest := boaters[rand.Intn(len(boaters))]
		if guest.ID == l.HostID {
			continue
		}

		days := rand.Intn(40) - 20
		nights := 1 + rand.Intn(4)
		checkIn := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, days)
		checkOut := checkIn.AddDate(0, 0, nights)

		subtotal := l.PricePerNight * float64(nights)
		serviceFee := float64(int(subtotal*l.ServiceFeeRate + 0.5))
		status := statuses[rand.Intn(len(statuses))]
		if checkOut.Before(time.Now().UTC()) {
			status = domain.BookingCompleted
		}

		b := domain.Booking{
			ListingID:     l.ID,
			GuestID:       guest.ID,
			HostID:        l.HostID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Nights:        nights,
			Subtotal:      subtotal,
			CleaningFee:   l.CleaningFee,
			ServiceFee:    serviceFee,
			Total:         subtotal + l.CleaningFee + serviceFee,
			Status:        status,
			PaymentStatus: domain.PaymentPending,
			BoatName:      fmt.Sprintf("SV Wanderer %d", i+1),
			BoatLength:    20 + float64(rand.Intn(20)),
		}
		db.Create(&b)

		// ================== REVIEWS ==================
		if b.Status == domain.BookingCompleted {
			rv := domain.Review{
				BookingID: b.ID,
				ListingID: l.ID,
				AuthorID:  guest.ID,
				HostID:    l.HostID,
				Overall:   3 + rand.Intn(3),
				Content:   "Easy tie-up and a very responsive host.",
			}
			db.Create(&rv)
		}
	}

	// Recompute listing aggregates from the seeded reviews.
	for _, l := range listings {
		db.Exec(`UPDATE listings SET
			rating = COALESCE((SELECT ROUND(AVG(overall) * 10) / 10.0 FROM reviews WHERE listing_id = ?), 0),
			review_count = (SELECT COUNT(1) FROM reviews WHERE listing_id = ?)
			WHERE id = ?`, l.ID, l.ID, l.ID)
	}

	log.Println("Seed completed")
	log.Println("Test accounts:")
	log.Println("Admin:   admin@housequay.com / admin123")
	log.Println("Boaters: sam@sailmail.com, rivka@tideline.io, jordan@portside.net / boater123")
	log.Println("Hosts:   elena@lakesidejetty.com, marco@bayfrontslips.com, june@harborhomes.com / host123")
}
