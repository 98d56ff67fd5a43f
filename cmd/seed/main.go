// Seeds the template library with the initial vetted catalog.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"lexdraft/internal/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	database := os.Getenv("MONGO_DATABASE")
	if database == "" {
		database = "lexdraft"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(database).Collection("templates")

	templates := []interface{}{
		tpl("Mutual Non-Disclosure Agreement", "Standard two-way confidentiality agreement for business discussions.", "popular", 2543, "2025-02-15"),
		tpl("Independent Contractor Agreement", "Agreement for hiring freelancers and consultants.", "popular", 1982, "2025-01-30"),
		tpl("Employment Agreement", "Standard employment contract for hiring new employees.", "employment", 1756, "2025-03-02"),
		tpl("SAFE Agreement (Simple Agreement for Future Equity)", "Y Combinator's simple investment instrument for early-stage funding.", "startup", 1432, "2025-02-28"),
		tpl("Website Terms of Service", "Terms governing the use of your website or application.", "popular", 1324, "2025-03-10"),
		tpl("Privacy Policy", "GDPR and CCPA compliant privacy policy for websites and apps.", "popular", 1289, "2025-03-12"),
		tpl("Intellectual Property Assignment", "Transfer ownership of IP rights from one party to another.", "ip", 943, "2025-02-10"),
		tpl("Software License Agreement", "Terms for licensing proprietary software to customers.", "commercial", 876, "2025-01-25"),
		tpl("Founders' Agreement", "Agreement between co-founders establishing roles and equity.", "startup", 823, "2025-02-05"),
	}

	result, err := coll.InsertMany(ctx, templates)
	if err != nil {
		log.Fatalf("Failed to insert templates: %v", err)
	}

	fmt.Printf("Seeded %d templates into %s.templates\n", len(result.InsertedIDs), database)
}

func tpl(title, description, category string, downloads int, updated string) model.Template {
	updatedAt, err := time.Parse("2006-01-02", updated)
	if err != nil {
		updatedAt = time.Now()
	}
	return model.Template{
		Title:         title,
		Description:   description,
		Category:      category,
		DownloadCount: downloads,
		UpdatedAt:     updatedAt,
		CreatedAt:     time.Now(),
	}
}
