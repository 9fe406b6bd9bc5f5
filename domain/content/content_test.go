package content

import "testing"

func TestBannerStyle_NormalizeFillsDefaults(t *testing.T) {
	got := BannerStyle{}.Normalize()

	if got.Alignment != AlignCenter {
		t.Errorf("alignment = %q", got.Alignment)
	}
	if got.GradientDirection != "90deg" {
		t.Errorf("gradient direction = %q", got.GradientDirection)
	}
	if got.GradientColors != [2]string{"#ffffff", "#f0f0f0"} {
		t.Errorf("gradient colors = %v", got.GradientColors)
	}
	if got.Title.FontSize != "3.5rem" || got.Title.FontWeight != "600" {
		t.Errorf("title style = %+v", got.Title)
	}
	if got.Description.FontSize != "1.2rem" || got.Description.FontWeight != "300" {
		t.Errorf("description style = %+v", got.Description)
	}
	if got.DescriptionColor != "#ffffff" {
		t.Errorf("description color = %q", got.DescriptionColor)
	}
}

func TestBannerStyle_NormalizeKeepsExplicitValues(t *testing.T) {
	got := BannerStyle{
		Alignment: AlignRight,
		Title:     TextStyle{FontSize: "2rem"},
	}.Normalize()

	if got.Alignment != AlignRight {
		t.Errorf("alignment overwritten: %q", got.Alignment)
	}
	if got.Title.FontSize != "2rem" {
		t.Errorf("title size overwritten: %q", got.Title.FontSize)
	}
	if got.Title.FontWeight != "600" {
		t.Errorf("unset weight not defaulted: %q", got.Title.FontWeight)
	}
}

func TestBannerStyle_GradientDropsTitleShadow(t *testing.T) {
	got := BannerStyle{UseGradient: true}.Normalize()
	if got.Title.TextShadow != "none" {
		t.Errorf("gradient title kept shadow %q", got.Title.TextShadow)
	}
}

func TestBannerStyle_TitleWordColorsDefaultToWhite(t *testing.T) {
	got := BannerStyle{
		TitleColors: []WordColor{{Text: "Grow"}, {Text: "Together", Color: "#22c55e"}},
	}.Normalize()
	if got.TitleColors[0].Color != "#ffffff" {
		t.Errorf("unset word color = %q", got.TitleColors[0].Color)
	}
	if got.TitleColors[1].Color != "#22c55e" {
		t.Errorf("explicit word color overwritten: %q", got.TitleColors[1].Color)
	}
}
