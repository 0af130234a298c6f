package services

import "github.com/shopcanvas/builder-backend/internal/domain"

// Hardcoded payloads served when a section has never been configured,
// is disabled, or the build for it failed. The mobile client renders
// these without any special casing.

func defaultSliderData() map[string]any {
	return map[string]any{
		"slides": []map[string]any{
			{
				"title":     "Welcome to the store",
				"subtitle":  "Browse our latest arrivals",
				"image_url": "https://cdn.shopcanvas.dev/defaults/slide-welcome.png",
			},
		},
	}
}

func defaultCategoriesData() map[string]any {
	return map[string]any{
		"categories": []map[string]any{
			{"title": "All Products", "image_url": "https://cdn.shopcanvas.dev/defaults/category-all.png"},
		},
	}
}

func defaultSharkTankData() map[string]any {
	return map[string]any{
		"title":    "Shark Tank",
		"products": []domain.ProductRecord{},
	}
}

func defaultNewDropsData() map[string]any {
	return map[string]any{
		"title":            "New Drops",
		"banner_image_url": "",
		"products":         []domain.ProductRecord{},
	}
}

func defaultHeaderData() *domain.HeaderConfig {
	return &domain.HeaderConfig{
		ID:         domain.SectionConfigID,
		Enabled:    true,
		StoreName:  "My Store",
		ShowSearch: true,
		ShowCart:   true,
	}
}

// defaultHomeLayout is the layout served before any homepage template
// has been published.
func defaultHomeLayout() []domain.ComponentInstance {
	return []domain.ComponentInstance{
		{ID: "default-header", Type: "Header", Props: map[string]any{"text": "My Store"}},
		{ID: "default-slider", Type: "Slider", Props: map[string]any{}},
		{ID: "default-carousel", Type: "ProductCarousel", Props: map[string]any{"title": "Featured"}},
		{ID: "default-footer", Type: "Footer", Props: map[string]any{}},
	}
}

// defaultPdpLayout mirrors the app's built-in product page so an
// inactive custom design degrades to the stock experience.
func defaultPdpLayout() []domain.ComponentInstance {
	return []domain.ComponentInstance{
		{ID: "default-gallery", Type: "ProductGallery", Props: map[string]any{}},
		{ID: "default-info", Type: "ProductInfo", Props: map[string]any{}},
		{ID: "default-variants", Type: "VariantPicker", Props: map[string]any{}},
		{ID: "default-cart", Type: "AddToCart", Props: map[string]any{}},
	}
}
