package service

import "github.com/trendythreads/storefront/internal/core/domain"

// starterCatalog is the fixed dataset inserted when the catalog is empty.
// This is a bootstrap fixture, not a general import mechanism.
func starterCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Camera", Price: 499.99, Image: "/images/product1.jpeg", Description: "DSLR camera with HD quality."},
		{Name: "Bag", Price: 79.99, Image: "/images/product2.jpeg", Description: "Stylish and durable travel bag, perfect for everyday use."},
		{Name: "Makeup Kit", Price: 45.99, Image: "/images/product3.jpeg", Description: "All-in-one makeup kit with versatile shades for a flawless look anytime."},
		{Name: "Perfume", Price: 49.99, Image: "/images/product4.jpeg", Description: "Long-lasting fragrance with a refreshing aroma."},
		{Name: "Toy Car", Price: 19.99, Image: "/images/product5.jpeg", Description: "Mini racing toy car for kids."},
		{Name: "Food Factory", Price: 129.99, Image: "/images/product6.jpeg", Description: "Kitchen food factory appliance for multiple uses."},
		{Name: "Hair Pony", Price: 2.99, Image: "/images/product7.jpeg", Description: "Durable and stylish hair pony for daily use."},
		{Name: "Monster Truck (Remote Control)", Price: 89.99, Image: "/images/product8.jpeg", Description: "Exciting RC monster truck with powerful wheels."},
		{Name: "Headphone", Price: 59.99, Image: "/images/product9.jpeg", Description: "High-quality over-ear headphones with deep bass."},
		{Name: "Water Bottle", Price: 15.99, Image: "/images/product10.jpeg", Description: "Reusable eco-friendly water bottle for hydration."},
		{Name: "Monopoly", Price: 25.99, Image: "/images/product11.jpeg", Description: "Classic Monopoly board game for family fun."},
		{Name: "Pencil Colors", Price: 5.99, Image: "/images/product12.jpeg", Description: "Set of 12 vibrant pencil colors for creative drawing."},
		{Name: "Vase", Price: 34.99, Image: "/images/product13.jpeg", Description: "Beautiful decorative flower vase."},
		{Name: "Globe", Price: 39.99, Image: "/images/product14.jpeg", Description: "Educational globe for geography lovers."},
		{Name: "AirPods", Price: 129.99, Image: "/images/product15.jpeg", Description: "Wireless earbuds with great sound quality."},
		{Name: "Ludo", Price: 49.99, Image: "/images/product16.jpeg", Description: "Classic wooden Ludo game for endless family fun and bonding."},
		{Name: "Mini Bagpack", Price: 79.99, Image: "/images/product17.jpeg", Description: "Compact and trendy mini backpack, perfect for daily essentials on the go."},
		{Name: "Blender", Price: 219.99, Image: "/images/product18.jpeg", Description: "Powerful and easy-to-use blender for smoothies, shakes, and everyday kitchen tasks."},
		{Name: "Dumbbell", Price: 89.99, Image: "/images/product19.jpeg", Description: "Durable and comfortable dumbbell for effective home or gym workouts."},
		{Name: "Lamp", Price: 89.99, Image: "/images/product20.jpeg", Description: "Stylish and energy-efficient lamp to brighten up any room or workspace."},
		{Name: "Silicon Phone Case", Price: 89.99, Image: "/images/product21.jpeg", Description: "Flexible and durable silicone phone case for all-round protection and a comfortable grip."},
		{Name: "Notebooks", Price: 89.99, Image: "/images/product22.jpeg", Description: "Premium-quality notebooks perfect for notes, journaling, and daily planning."},
		{Name: "Yoga Exercise Mat", Price: 89.99, Image: "/images/product23.jpeg", Description: "Non-slip yoga mat designed for maximum comfort and stability during workouts."},
		{Name: "Sticky Notes", Price: 89.99, Image: "/images/product24.jpeg", Description: "Bright and handy sticky notes for reminders, organization, and quick note-taking."},
	}
}
