package bot

import (
	"fmt"
	"strings"

	"crafty-marketplace-be/internal/constant"
	"crafty-marketplace-be/pkg/utils"
)

const (
	searchResultLimit = 5
	excerptLength     = 100
)

func greetingReply(principal *Principal) string {
	if principal == nil {
		return "Hello! 👋 Welcome to Crafty! I'm your friendly assistant here to help you discover amazing handmade crafts from talented artists. What can I help you with today?"
	}
	greeting := fmt.Sprintf("Hello %s! 👋 Welcome to Crafty! I'm here to help you with any questions about our handmade crafts, artists, or orders. What would you like to know?", principal.DisplayName)
	if principal.IsArtist {
		greeting += "\n\nAs an artist, you can also ask me how buyers reach you through your profile."
	}
	return greeting
}

const helpReply = `I can help you with many things! Here's what I can do:

🛍️ **Product Information**: Ask about specific products, prices, or availability
👨‍🎨 **Artist Details**: Learn about our talented craft artists
📂 **Categories**: Browse different craft categories like jewelry, home decor, etc.
📦 **Orders**: Get help with order tracking, delivery, or returns
❓ **General Questions**: Ask about our policies, shipping, or anything else

Just type your question naturally, and I'll do my best to help! For example:
- "Show me jewelry products"
- "Who are your artists?"
- "How do I track my order?"
- "What's your return policy?"

What would you like to know?`

const artistContactReply = `👨‍🎨 **Contacting Artists**

Here's how you can reach our talented artists:

**Direct Contact:**
• Visit any artist's profile page on our website
• Click the "Contact Artist" button on their profile
• Send them a direct message through our platform

**Artist Profiles Include:**
• Contact information (email, phone if provided)
• Social media links
• Portfolio and previous work
• Availability for custom orders

**Custom Orders:**
• Many artists accept custom commissions
• Contact them directly to discuss your ideas
• They can provide quotes and timelines

**Browse Artists:**
• Go to "Artisans" in our main menu
• Filter by craft type or location
• View their profiles and contact information

Would you like me to help you find artists in a specific category?`

const orderInfoReply = `📦 **Order Information**

Here's what I can help you with regarding orders:

• **Track your order**: Log in to your account to see order status
• **Delivery time**: Usually 3-7 business days within Algeria
• **Shipping cost**: Calculated at checkout based on your location
• **Returns**: 7-day return policy for unused items
• **Contact support**: Email us at support@crafty.com

If you have a specific order question, please log in to your account or contact our support team with your order number.`

const contactReply = `📞 **Contact Information**

You can reach us through:

📧 **Email**: support@crafty.com
📱 **Phone**: +213 XXX XXX XXX
📍 **Address**: 12 Rue Didouche Mourad, Algiers
🕒 **Hours**: Monday-Friday, 9 AM - 6 PM

For order inquiries, please include your order number. For general questions, feel free to ask me anything!`

var defaultReplies = []string{
	"I'm not sure I understand that question. Could you rephrase it or ask about our products, artists, or orders?",
	"That's an interesting question! I'm still learning. Try asking about our handmade crafts, artists, or how to place an order.",
	"I'd be happy to help! You can ask me about our products, artists, categories, or order information. What would you like to know?",
	"Let me help you with that! Try asking about specific products, our artists, or order-related questions.",
}

func productListReply(hits []ProductHit) string {
	if len(hits) == 0 {
		var b strings.Builder
		b.WriteString("I couldn't find specific products matching your request. Here are some popular categories:\n\n")
		for i, c := range constant.CraftCategories {
			if i == searchResultLimit {
				break
			}
			fmt.Fprintf(&b, "• %s\n", c.Name)
		}
		b.WriteString("\nTry asking about a specific category or product name!")
		return b.String()
	}

	var b strings.Builder
	b.WriteString("I found some products that might interest you:\n\n")
	for _, p := range hits {
		fmt.Fprintf(&b, "🛍️ **%s** - %.2f DZD\n", p.Name, p.EffectivePrice())
		fmt.Fprintf(&b, "   By %s\n", p.ArtistName)
		fmt.Fprintf(&b, "   %s...\n\n", utils.Truncate(p.Description, excerptLength))
	}
	b.WriteString("Would you like to know more about any specific product?")
	return b.String()
}

func artistListReply(hits []ArtistHit) string {
	if len(hits) == 0 {
		return "We have many talented artists creating beautiful handmade crafts! You can browse all artists on our website or ask about specific craft types."
	}

	var b strings.Builder
	b.WriteString("Here are some of our talented artists:\n\n")
	for _, a := range hits {
		fmt.Fprintf(&b, "👨‍🎨 **%s**\n", a.Name)
		if a.Bio != "" {
			fmt.Fprintf(&b, "   %s...\n", utils.Truncate(a.Bio, excerptLength))
		}
		commissions := "No"
		if a.Commissions {
			commissions = "Yes"
		}
		fmt.Fprintf(&b, "   Available for commissions: %s\n\n", commissions)
	}
	return b.String()
}

func categoriesReply() string {
	var b strings.Builder
	b.WriteString("Here are our craft categories:\n\n")
	for _, c := range constant.CraftCategories {
		fmt.Fprintf(&b, "• **%s**\n", c.Name)
	}
	b.WriteString("\nYou can ask me about products in any of these categories!")
	return b.String()
}
