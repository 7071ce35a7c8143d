// Command seed populates the configured post store with sample blog posts.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/config"
)

var samplePosts = []simpleblog.CreatePostRequest{
	{
		Title:       "Getting Started with Next.js 14",
		ImageURL:    "https://images.unsplash.com/photo-1555066931-4365d14bab8c",
		Alt:         "Code on a laptop screen",
		Description: "Learn how to build modern web applications with Next.js 14, the latest version of the React framework.",
		Content: `<h2>Introduction to Next.js 14</h2>
<p>Next.js 14 brings exciting new features and improvements to the React ecosystem.</p>
<h3>Why Choose Next.js 14?</h3>
<p>Next.js 14 offers significant improvements in performance, developer experience, and scalability. The new App Router provides a more intuitive way to structure your applications, while Server Components reduce client-side JavaScript and improve initial page load times.</p>`,
		MetaTitle:       "Next.js 14 Tutorial: Modern Web Applications",
		MetaDescription: "Learn how to build modern web applications with Next.js 14, including Server Components, App Router, and performance optimizations.",
	},
	{
		Title:       "The Future of Web Development",
		ImageURL:    "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
		Alt:         "Futuristic web development concept",
		Description: "Explore the emerging trends and technologies shaping the future of web development.",
		Content: `<h2>Emerging Trends in Web Development</h2>
<p>The web development landscape is constantly evolving.</p>
<h3>WebAssembly: The Game Changer</h3>
<p>WebAssembly is revolutionizing web performance by allowing code written in languages like C++ and Rust to run in the browser at near-native speeds.</p>
<h3>The Rise of Edge Computing</h3>
<p>Edge computing brings computation and data storage closer to the location where it's needed, improving response times and saving bandwidth.</p>`,
		MetaTitle:       "Future of Web Development: Trends",
		MetaDescription: "Discover the emerging trends and technologies that are shaping the future of web development, from WebAssembly to edge computing.",
	},
	{
		Title:       "Building Responsive UIs with Tailwind CSS",
		ImageURL:    "https://images.unsplash.com/photo-1517694712202-14dd9538aa97",
		Alt:         "Responsive design on multiple devices",
		Description: "Master the art of creating beautiful, responsive user interfaces using Tailwind CSS.",
		Content: `<h2>Why Tailwind CSS?</h2>
<p>Tailwind CSS has revolutionized the way we build user interfaces.</p>
<h3>Getting Started with Tailwind</h3>
<p>To add Tailwind CSS to your project, install the tailwindcss package and run the init command.</p>
<h3>Best Practices</h3>
<p>Learn how to create responsive designs that work beautifully across all devices using Tailwind's powerful utility classes.</p>`,
		MetaTitle:       "Responsive UI Design with Tailwind CSS",
		MetaDescription: "Learn how to create beautiful, responsive user interfaces using Tailwind CSS's utility-first approach.",
	},
	{
		Title:       "MongoDB Best Practices for Web Applications",
		ImageURL:    "https://images.unsplash.com/photo-1544383835-bda2bc66a55d",
		Alt:         "Database server room",
		Description: "Learn essential MongoDB best practices for building scalable web applications.",
		Content: `<h2>MongoDB Architecture</h2>
<p>Understanding MongoDB's architecture is crucial for building scalable applications.</p>
<h3>Schema Design</h3>
<p>Learn how to design efficient MongoDB schemas that support your application's needs while maintaining performance.</p>
<h3>Query Optimization</h3>
<p>Discover techniques for writing efficient queries and using indexes effectively to improve your application's performance.</p>`,
		MetaTitle:       "MongoDB Best Practices for Web Applications",
		MetaDescription: "Essential MongoDB best practices for building scalable web applications, including schema design and query optimization.",
	},
	{
		Title:       "The Art of API Design",
		ImageURL:    "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb",
		Alt:         "API architecture diagram",
		Description: "Master the principles of designing clean, efficient, and maintainable APIs.",
		Content: `<h2>API Design Principles</h2>
<p>Great APIs are built on solid principles.</p>
<h3>REST Best Practices</h3>
<p>Learn how to design RESTful APIs that are intuitive, efficient, and easy to maintain.</p>
<h3>API Security</h3>
<p>Discover essential security practices for protecting your APIs and user data.</p>`,
		MetaTitle:       "API Design: Principles and Best Practices",
		MetaDescription: "Learn the principles of designing clean, efficient, and maintainable APIs with a focus on REST architecture and security.",
	},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	repo, closeRepo, err := cfg.BuildRepository(ctx)
	if err != nil {
		slog.Error("Failed to initialize post store", "error", err, "type", cfg.DatabaseType())
		os.Exit(1)
	}
	defer closeRepo(ctx)

	svc, err := simpleblog.New(simpleblog.WithRepository(repo))
	if err != nil {
		slog.Error("Failed to create blog service", "error", err)
		os.Exit(1)
	}

	for _, req := range samplePosts {
		post, err := svc.CreatePost(ctx, req)
		if err != nil {
			slog.Error("Failed to seed post", "title", req.Title, "error", err)
			os.Exit(1)
		}
		slog.Info("Seeded post", "title", post.Title, "slug", post.Slug)
	}
	slog.Info("Seeding complete", "count", len(samplePosts))
}
