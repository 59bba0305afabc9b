package main

import (
	"log"
	"os"
	"time"

	"crafty-marketplace-be/internal/model"
	"crafty-marketplace-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type faqSeed struct {
	Question string
	Answer   string
	Keywords string
	Category string
}

var sampleFaqs = []faqSeed{
	{
		Question: "What is your return policy?",
		Answer:   "We offer a 7-day return policy for unused items in original condition. Items must be returned with original packaging and tags. Custom or personalized items cannot be returned unless there is a defect.",
		Keywords: "return, refund, policy, exchange, send back",
		Category: "Returns",
	},
	{
		Question: "How long does shipping take?",
		Answer:   "Standard shipping within Algeria takes 3-7 business days. Express shipping (1-3 days) is available for an additional fee. International shipping times vary by destination.",
		Keywords: "shipping, delivery, time, how long, when, arrive",
		Category: "Shipping",
	},
	{
		Question: "Do you offer custom orders?",
		Answer:   "Yes! Many of our artists accept custom orders. You can contact them directly through their profile pages or use our custom order form. Custom items may take 2-4 weeks to complete.",
		Keywords: "custom, personalized, made to order, special request, bespoke",
		Category: "Custom Orders",
	},
	{
		Question: "How do I track my order?",
		Answer:   "Once your order ships, you will receive a tracking number via email. You can also log into your account and check the order status in your dashboard.",
		Keywords: "track, tracking, order status, where is my order, delivery",
		Category: "Orders",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept all major credit cards (Visa, Mastercard), PayPal, and bank transfers. Payment is processed securely through our encrypted payment gateway.",
		Keywords: "payment, pay, credit card, visa, mastercard, paypal, how to pay",
		Category: "Payment",
	},
	{
		Question: "Are your products handmade?",
		Answer:   "Yes! All products on Crafty are handmade by talented local artists. Each piece is unique and crafted with care and attention to detail.",
		Keywords: "handmade, handcrafted, artisan, local, unique, authentic",
		Category: "Products",
	},
	{
		Question: "How do I become an artist on Crafty?",
		Answer:   "To become an artist, create an account and select \"Artist\" as your role. Complete your artist profile with photos of your work, bio, and contact information. Our team will review your application.",
		Keywords: "become artist, sell, join, apply, artist application, how to sell",
		Category: "Artists",
	},
	{
		Question: "Do you ship internationally?",
		Answer:   "Currently, we primarily serve customers in Algeria. International shipping may be available for select items. Please contact us for international shipping options and rates.",
		Keywords: "international, worldwide, outside algeria, abroad, export",
		Category: "Shipping",
	},
	{
		Question: "What if my item arrives damaged?",
		Answer:   "If your item arrives damaged, please contact us within 48 hours with photos of the damage. We will arrange for a replacement or full refund, including return shipping costs.",
		Keywords: "damaged, broken, defect, problem, issue, not working",
		Category: "Returns",
	},
	{
		Question: "How do I contact customer support?",
		Answer:   "You can reach our customer support team via email at support@crafty.com, phone at +213 XXX XXX XXX, or through the contact form on our website. We typically respond within 24 hours.",
		Keywords: "contact, support, help, email, phone, customer service",
		Category: "Contact",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	success := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	created := 0
	for _, seed := range sampleFaqs {
		var count int64
		if err := db.Model(&model.Faq{}).Where("question = ?", seed.Question).Count(&count).Error; err != nil {
			log.Fatalf("Error: Failed to check existing FAQ: %v", err)
		}
		if count > 0 {
			warn.Printf("FAQ already exists: %s\n", seed.Question)
			continue
		}

		faq := model.Faq{
			Id:        uuid.New(),
			Question:  seed.Question,
			Answer:    seed.Answer,
			Keywords:  seed.Keywords,
			Category:  seed.Category,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&faq).Error; err != nil {
			log.Fatalf("Error: Failed to create FAQ: %v", err)
		}
		created++
		success.Printf("Created FAQ: %s\n", seed.Question)
	}

	success.Printf("Successfully loaded %d sample FAQs\n", created)
}
