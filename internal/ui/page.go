// internal/ui/page.go
package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-landing/internal/config"
	"go-landing/internal/defs"
	"go-landing/internal/magnetic"
	"go-landing/internal/scroll"
	"go-landing/pkg/render"
)

// Идентификаторы секций страницы в порядке следования.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

var sectionOrder = []string{SectionHome, SectionAbout, SectionSkills, SectionProjects, SectionContact}

const (
	contentWidth = 760.0
	lineGap      = 8.0
	cardHeight   = 150.0
	cardGap      = 24.0
	skillRow     = 46.0
	headingGap   = 72.0
)

// Page — статическая разметка страницы, собранная из ленты контента.
type Page struct {
	feed     *defs.Feed
	fonts    *render.Fonts
	width    float64
	height   float64
	left     float64
	sections []scroll.Section
	nav      []*Button
	links    []*Button
	lines    []string
	bars     SkillBars
}

// BuildPage раскладывает секции и создаёт кнопки навигации и ссылок.
// onNav получает id секции, onOpen — URI внешней ссылки.
func BuildPage(feed *defs.Feed, fonts *render.Fonts, width, height float64, vp Viewport, onNav func(string), onOpen func(string)) *Page {
	p := &Page{
		feed:   feed,
		fonts:  fonts,
		width:  width,
		height: height,
		left:   (width - contentWidth) / 2,
	}
	p.lines = Wrap(fonts.Body, feed.About, int(contentWidth))

	heights := map[string]float64{
		SectionHome:     height,
		SectionAbout:    headingGap + float64(len(p.lines))*(bodyLineHeight()) + 2*config.SectionPadding,
		SectionSkills:   headingGap + float64(len(feed.Skills))*skillRow + 2*config.SectionPadding,
		SectionProjects: headingGap + float64(len(feed.Projects))*(cardHeight+cardGap) + 2*config.SectionPadding,
		SectionContact:  headingGap + float64(len(feed.Contacts))*64 + 2*config.SectionPadding,
	}
	top := 0.0
	for _, id := range sectionOrder {
		p.sections = append(p.sections, scroll.Section{ID: id, Top: top, Height: heights[id]})
		top += heights[id]
	}
	// Последняя секция занимает хотя бы экран, чтобы до неё можно было докрутить
	if last := &p.sections[len(p.sections)-1]; last.Height < height {
		last.Height = height
	}

	// Навигация закреплена на экране и не прокручивается
	x := width - 40.0
	for i := len(sectionOrder) - 1; i >= 1; i-- {
		id := sectionOrder[i]
		label := strings.ToUpper(id[:1]) + id[1:]
		w := float64(textWidth(fonts.Small, label)) + 28
		x -= w + 8
		b := NewButton(magnetic.Rect{X: x, Y: 12, W: w, H: 32}, label, config.MagneticMarker, func() { onNav(id) })
		p.nav = append([]*Button{b}, p.nav...)
	}

	projects := p.section(SectionProjects)
	for i, pr := range feed.Projects {
		uri := pr.URL
		y := projects.Top + config.SectionPadding + headingGap + float64(i)*(cardHeight+cardGap) + cardHeight - 44
		b := NewButton(magnetic.Rect{X: p.left + 20, Y: y, W: 140, H: 32}, "View source", config.MagneticMarker, func() { onOpen(uri) })
		b.Viewport = vp
		p.links = append(p.links, b)
	}

	contact := p.section(SectionContact)
	for i, c := range feed.Contacts {
		uri := c.URI
		y := contact.Top + config.SectionPadding + headingGap + float64(i)*64
		label := fmt.Sprintf("%s  ·  %s", c.Channel, c.Display)
		b := NewButton(magnetic.Rect{X: p.left, Y: y, W: contentWidth, H: 48}, label, config.MagneticMarker, func() { onOpen(uri) })
		b.Viewport = vp
		p.links = append(p.links, b)
	}
	return p
}

// Sections возвращает разметку секций для трекера прокрутки.
func (p *Page) Sections() []scroll.Section {
	out := make([]scroll.Section, len(p.sections))
	copy(out, p.sections)
	return out
}

// Buttons возвращает все кнопки страницы: сначала навигацию, затем ссылки.
func (p *Page) Buttons() []*Button {
	out := make([]*Button, 0, len(p.nav)+len(p.links))
	out = append(out, p.nav...)
	return append(out, p.links...)
}

// Targets отбирает элементы с заданной отметкой для магнитного движка.
func (p *Page) Targets(marker string) []magnetic.Target {
	var out []magnetic.Target
	for _, b := range p.Buttons() {
		if b.Marker == marker {
			out = append(out, b)
		}
	}
	return out
}

// ButtonAt возвращает верхнюю кнопку под указателем.
func (p *Page) ButtonAt(x, y float64) *Button {
	for _, b := range p.nav {
		if b.Contains(x, y) {
			return b
		}
	}
	for _, b := range p.links {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// HeroText — раскрытые печатающими машинками строки героя.
type HeroText struct {
	Title    string
	Subtitle string
	Caret    bool
}

// View — состояние прокрутки и времени, с которым рисуется страница.
type View struct {
	Offset   float64
	Progress float64
	Active   string // подсвечивается в навигации
	Scrolled bool   // навигация получает фон
	Now      time.Duration
	Hero     HeroText
}

// Update отмечает видимость секции навыков при смещении offset.
func (p *Page) Update(offset float64, now time.Duration) {
	s := p.section(SectionSkills)
	top := s.Top - offset
	p.bars.SetVisible(top < p.height && top+s.Height > 0, now)
}

// SkillBars возвращает состояние роста полос навыков.
func (p *Page) SkillBars() *SkillBars {
	return &p.bars
}

// Draw рисует страницу в состоянии v.
func (p *Page) Draw(screen *ebiten.Image, pal config.Palette, v View) {
	for _, s := range p.sections {
		top := s.Top - v.Offset
		if top > p.height || top+s.Height < 0 {
			continue
		}
		switch s.ID {
		case SectionHome:
			p.drawHero(screen, pal, top, v)
		case SectionAbout:
			p.drawAbout(screen, pal, top)
		case SectionSkills:
			p.drawSkills(screen, pal, top, v.Now)
		case SectionProjects:
			p.drawProjects(screen, pal, top)
		case SectionContact:
			p.drawHeading(screen, pal, "Contact", top)
		}
	}
	for _, b := range p.links {
		b.TextColor, b.BgColor = pal.Text, pal.Surface
		b.Draw(screen, p.fonts.Body)
	}

	if v.Scrolled {
		vector.DrawFilledRect(screen, 0, 0, float32(p.width), config.NavHeight, pal.Surface, false)
	}
	for i, b := range p.nav {
		b.TextColor, b.BgColor = pal.TextMuted, color.RGBA{}
		if sectionOrder[i+1] == v.Active {
			b.TextColor, b.BgColor = pal.Text, pal.Accent
		}
		b.Draw(screen, p.fonts.Small)
	}
}

func (p *Page) drawHero(screen *ebiten.Image, pal config.Palette, top float64, v View) {
	title := v.Hero.Title
	if v.Hero.Caret {
		title += "|"
	}
	scale, opacity := HeroStyle(v.Progress)
	// Масштаб относительно центра секции
	cx, cy := p.width/2, top+p.height/2
	draw := func(s string, face font.Face, x, y float64, c color.RGBA) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x-cx, y-cy)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cx, cy)
		op.ColorScale.ScaleWithColor(c)
		op.ColorScale.ScaleAlpha(float32(opacity))
		text.DrawWithOptions(screen, s, face, op)
	}
	y := top + p.height*0.45
	draw(title, p.fonts.Title, p.left, y, pal.Text)
	draw(v.Hero.Subtitle, p.fonts.Body, p.left, y+48, pal.TextMuted)
}

func (p *Page) drawHeading(screen *ebiten.Image, pal config.Palette, heading string, top float64) {
	text.Draw(screen, heading, p.fonts.Title, int(p.left), int(top+config.SectionPadding+44), pal.Text)
}

func (p *Page) drawAbout(screen *ebiten.Image, pal config.Palette, top float64) {
	p.drawHeading(screen, pal, "About", top)
	y := top + config.SectionPadding + headingGap + bodyLineHeight()
	for _, line := range p.lines {
		text.Draw(screen, line, p.fonts.Body, int(p.left), int(y), pal.TextMuted)
		y += bodyLineHeight()
	}
}

func (p *Page) drawSkills(screen *ebiten.Image, pal config.Palette, top float64, now time.Duration) {
	p.drawHeading(screen, pal, "Skills", top)
	y := top + config.SectionPadding + headingGap
	for i, s := range p.feed.Skills {
		text.Draw(screen, s.Name, p.fonts.Body, int(p.left), int(y+18), pal.Text)
		pct := fmt.Sprintf("%d%%", s.Percent)
		text.Draw(screen, pct, p.fonts.Small, int(p.left+contentWidth)-textWidth(p.fonts.Small, pct), int(y+18), pal.TextMuted)

		barY := float32(y + 28)
		vector.DrawFilledRect(screen, float32(p.left), barY, contentWidth, 6, pal.Surface, false)
		vector.DrawFilledRect(screen, float32(p.left), barY, float32(contentWidth*float64(s.Percent)/100*p.bars.Fraction(i, now)), 6, pal.Accent, false)
		y += skillRow
	}
}

func (p *Page) drawProjects(screen *ebiten.Image, pal config.Palette, top float64) {
	p.drawHeading(screen, pal, "Projects", top)
	y := top + config.SectionPadding + headingGap
	for _, pr := range p.feed.Projects {
		vector.DrawFilledRect(screen, float32(p.left), float32(y), contentWidth, cardHeight, pal.Surface, false)
		vector.StrokeRect(screen, float32(p.left), float32(y), contentWidth, cardHeight, 1, render.DarkenColor(pal.Accent), false)
		text.Draw(screen, pr.Title, p.fonts.Body, int(p.left+20), int(y+32), pal.Text)
		text.Draw(screen, pr.Description, p.fonts.Small, int(p.left+20), int(y+58), pal.TextMuted)
		text.Draw(screen, strings.Join(pr.Tags, " · "), p.fonts.Small, int(p.left+20), int(y+82), pal.Accent)
		y += cardHeight + cardGap
	}
}

func (p *Page) section(id string) scroll.Section {
	for _, s := range p.sections {
		if s.ID == id {
			return s
		}
	}
	return scroll.Section{}
}

func bodyLineHeight() float64 {
	return 18 + lineGap
}

func textWidth(face font.Face, s string) int {
	if face == nil {
		return 0
	}
	return font.MeasureString(face, s).Ceil()
}
