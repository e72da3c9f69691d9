package database

import (
	"log"
	"os"
	"time"

	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/blog"
	"greencouncil-api/internal/domain/events"
	"greencouncil-api/internal/domain/members"
	"greencouncil-api/internal/domain/resources"
	"greencouncil-api/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Does nothing when the account already exists or the
// variables are unset.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&users.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hashedPassword)

	admin := users.User{
		Name:         "Admin",
		Email:        email,
		Password:     &hashed,
		AuthProvider: "local",
		Role:         users.RoleAdmin,
		IsVerified:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Created bootstrap admin account %s", email)
	return nil
}

// SeedDemoData inserts a small localized sample set so a fresh install has
// something to show. Skipped when any content already exists.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&blog.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		post := blog.Post{
			Slug:     "why-green-buildings-matter",
			Status:   content.StatusPublished,
			ReadTime: 6,
		}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		postTranslations := []blog.PostTranslation{
			{
				PostID:   post.ID,
				Language: content.LangFrench,
				Title:    "Pourquoi les bâtiments durables comptent",
				Excerpt:  "Le secteur du bâtiment représente près de 40 % des émissions mondiales.",
				Author:   "Équipe GBC",
				Category: "Durabilité",
				Tags:     content.StringList{"durabilité", "construction"},
			},
			{
				PostID:   post.ID,
				Language: content.LangEnglish,
				Title:    "Why Green Buildings Matter",
				Excerpt:  "The building sector accounts for nearly 40% of global emissions.",
				Author:   "GBC Team",
				Category: "Sustainability",
				Tags:     content.StringList{"sustainability", "construction"},
			},
			{
				PostID:   post.ID,
				Language: content.LangArabic,
				Title:    "لماذا تهم المباني الخضراء",
				Excerpt:  "يمثل قطاع البناء ما يقارب ٤٠٪ من الانبعاثات العالمية.",
				Author:   "فريق المجلس",
				Category: "الاستدامة",
				Tags:     content.StringList{"استدامة", "بناء"},
			},
		}
		if err := tx.Create(&postTranslations).Error; err != nil {
			return err
		}

		event := events.Event{
			Slug:      "annual-green-building-forum",
			Status:    content.StatusPublished,
			StartDate: time.Now().AddDate(0, 2, 0),
			Location:  "Casablanca",
			Capacity:  250,
			Price:     0,
			Currency:  "MAD",
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		eventTranslations := []events.EventTranslation{
			{
				EventID:  event.ID,
				Language: content.LangFrench,
				Title:    "Forum annuel du bâtiment durable",
				Category: "Conférence",
			},
			{
				EventID:  event.ID,
				Language: content.LangEnglish,
				Title:    "Annual Green Building Forum",
				Category: "Conference",
			},
		}
		if err := tx.Create(&eventTranslations).Error; err != nil {
			return err
		}

		resource := resources.Resource{
			Slug:     "certification-guide",
			Status:   content.StatusPublished,
			FileURL:  "/files/certification-guide.pdf",
			FileSize: 2_400_000,
			FileType: "pdf",
		}
		if err := tx.Create(&resource).Error; err != nil {
			return err
		}
		resourceTranslations := []resources.ResourceTranslation{
			{
				ResourceID: resource.ID,
				Language:   content.LangFrench,
				Title:      "Guide de certification",
				Type:       "Guide",
				Category:   "Certification",
			},
			{
				ResourceID: resource.ID,
				Language:   content.LangEnglish,
				Title:      "Certification Guide",
				Type:       "Guide",
				Category:   "Certification",
			},
		}
		if err := tx.Create(&resourceTranslations).Error; err != nil {
			return err
		}

		member := members.Member{
			Email:          "demo@example.org",
			FirstName:      "Demo",
			LastName:       "Member",
			MembershipType: members.TypeIndividual,
			Status:         members.StatusPending,
			Language:       content.LangFrench,
		}
		return tx.Create(&member).Error
	})
}
