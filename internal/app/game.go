package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/pagestrip/internal/config"
	"github.com/depeter/pagestrip/internal/coordinator"
	"github.com/depeter/pagestrip/internal/i18n"
	"github.com/depeter/pagestrip/internal/jellyfin"
	"github.com/depeter/pagestrip/internal/menustrip"
	"github.com/depeter/pagestrip/internal/pager"
	"github.com/depeter/pagestrip/internal/scroll"
	"github.com/depeter/pagestrip/internal/tabs"
	"github.com/depeter/pagestrip/internal/ui"
)

// stripEpsilon is the snap distance for the strip's 0 to 1 progress animation.
const stripEpsilon = 0.001

// Game implements ebiten.Game: a menu strip above a horizontally paged view.
type Game struct {
	Config *config.Config
	Tr     *i18n.Translator
	Logger *slog.Logger

	Width, Height int

	source *tabs.Source
	pager  *pager.Pager
	strip  *menustrip.Strip
	coord  *coordinator.Coordinator

	pageAnim  *scroll.Animator
	stripAnim *scroll.Animator

	pagerView *ui.PagerView
	stripView *ui.StripView
	pointer   ui.Pointer
	debug     ui.DebugOverlay

	// Remote delivers media remote key presses; nil disables it.
	Remote *ui.Remote

	loader *jellyfin.Loader
	ctx    context.Context
	cancel context.CancelFunc
}

// NewGame wires the pager and strip to one tab source. client may be nil,
// in which case only the configured static tabs are shown.
func NewGame(cfg *config.Config, client *jellyfin.Client, tr *i18n.Translator, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		Config: cfg,
		Tr:     tr,
		Logger: logger,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
	}
	g.ctx, g.cancel = context.WithCancel(context.Background())

	g.source = &tabs.Source{
		Tabs:        tabs.Static(cfg.Tabs, tr),
		Measure:     ui.TextWidth(cfg.Menu.FontSize),
		CellPadding: cfg.Menu.CellPadding,
	}

	g.pageAnim = &scroll.Animator{Speed: cfg.Pager.AnimSpeed, Epsilon: scroll.DefaultEpsilon}
	g.stripAnim = &scroll.Animator{Speed: cfg.Menu.AnimSpeed, Epsilon: stripEpsilon}

	g.pager = pager.New(g.source, nil, g.pageAnim)
	g.pager.Logger = logger

	g.strip = menustrip.New(g.source, nil, menustrip.Options{
		CellSpacing:     cfg.Menu.CellSpacing,
		LeadingPadding:  cfg.Menu.LeadingPadding,
		TrailingPadding: cfg.Menu.TrailingPadding,
		SafeInsets: menustrip.Insets{
			Left:  cfg.Menu.SafeInsetLeft,
			Right: cfg.Menu.SafeInsetRight,
		},
	})
	g.strip.Animator = g.stripAnim
	g.strip.Logger = logger
	g.strip.RegisterFocusIndicator("indicator", cfg.Menu.IndicatorWidth, cfg.Menu.IndicatorHeight)

	g.coord = coordinator.Bind(g.pager, g.strip)
	g.coord.Logger = logger
	g.coord.OnPageChange = func(index int) {
		logger.Debug("app: page settled", "index", index)
	}

	g.pagerView = ui.NewPagerView(&pager.Gesture{
		Pager:         g.pager,
		Animator:      g.pageAnim,
		Slop:          cfg.Pager.DragSlop,
		FlickVelocity: cfg.Pager.FlickVelocity,
	})
	g.stripView = ui.NewStripView(&menustrip.Gesture{Strip: g.strip, Slop: cfg.Pager.DragSlop}, cfg.Menu.FontSize)
	g.stripView.BottomPadding = cfg.Menu.IndicatorBottomPadding
	g.debug.Title = "Debug (F12 to close)"

	g.setBounds(g.Width, g.Height)
	g.coord.Reload()

	if client != nil {
		g.loader = jellyfin.NewLoader(client, cfg.Server.LatestLimit, logger)
		g.loader.Start(g.ctx)
	}
	return g
}

// Context is cancelled by Close.
func (g *Game) Context() context.Context {
	return g.ctx
}

// Close cancels background loads.
func (g *Game) Close() {
	if g.loader != nil {
		g.loader.Stop()
	}
	g.cancel()
}

func (g *Game) setBounds(w, h int) {
	menuH := g.Config.Menu.Height
	g.stripView.X, g.stripView.Y = 0, 0
	g.strip.SetBounds(float64(w), menuH)
	g.pagerView.X, g.pagerView.Y = 0, menuH
	g.pager.SetBounds(float64(w), max(float64(h)-menuH, 0))
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if keyJustPressed(g.Config.Keybinds.DebugOverlay) {
		g.debug.Toggle()
	}

	g.applyLoaded()

	if !g.pagerView.Gesture.Dragging() {
		g.handleKeys()
	}

	ev := g.pointer.Poll()
	if !g.stripView.HandlePointer(ev) {
		g.pagerView.HandlePointer(ev)
	}
	cx, cy := ebiten.CursorPosition()
	g.stripView.HandleWheel(float64(cx), float64(cy))

	g.pageAnim.Step()
	g.stripAnim.Step()
	return nil
}

func (g *Game) handleKeys() {
	kb := g.Config.Keybinds
	switch {
	case keyRepeating(kb.NextTab) || g.remote(ui.RemoteNext):
		g.coord.Step(1)
	case keyRepeating(kb.PrevTab) || g.remote(ui.RemotePrev):
		g.coord.Step(-1)
	case keyJustPressed(kb.FirstTab) || g.remote(ui.RemoteFirst):
		g.coord.Step(-g.pager.PageCount())
	case keyJustPressed(kb.LastTab):
		g.coord.Step(g.pager.PageCount())
	case keyJustPressed(kb.Reload):
		g.reload()
	}
}

func (g *Game) remote(action ui.RemoteAction) bool {
	return g.Remote != nil && g.Remote.Take(action)
}

func (g *Game) reload() {
	if g.loader != nil {
		g.loader.Start(g.ctx)
		return
	}
	if g.pageAnim.Running() {
		g.Logger.Debug("app: reload deferred, pager animating")
		return
	}
	g.source.Tabs = tabs.Static(g.Config.Tabs, g.Tr)
	g.coord.Reload()
}

// applyLoaded swaps in freshly loaded libraries once the pager is at rest.
func (g *Game) applyLoaded() {
	if g.loader == nil || g.pager.State() != pager.StateIdle || g.pageAnim.Running() {
		return
	}
	res, ok := g.loader.Take()
	if !ok {
		return
	}
	if res.Err != nil || len(res.Libraries) == 0 {
		g.Logger.Info("app: keeping built-in tabs", "error", res.Err)
		return
	}
	g.source.Tabs = tabs.FromLibraries(res.Libraries, g.Tr)
	g.coord.Reload()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.pagerView.Draw(screen)
	g.stripView.Draw(screen)

	if g.loader != nil && g.loader.Loading() {
		msg := g.Tr.String("loading")
		w, _ := ui.MeasureText(msg, ui.FontSizeSmall)
		y := (g.Config.Menu.Height - ui.FontSizeSmall) / 2
		ui.DrawText(screen, msg, float64(g.Width)-w-ui.PagePadding, y, ui.FontSizeSmall, ui.ColorTextMuted)
	}

	g.debug.Draw(screen, g.debugLines())
}

func (g *Game) debugLines() []string {
	ind := g.strip.Indicator()
	lines := []string{
		fmt.Sprintf("pager: %s  offset=%.1f  left=%d", g.pager.State(), g.pager.Offset(), g.pager.LeftIndex()),
		fmt.Sprintf("page: index=%d  percent=%.2f  of %d", g.pager.CurrentPageIndex(), g.pager.CurrentPagePercent(), g.pager.PageCount()),
		fmt.Sprintf("strip: selected=%d  offset=%.1f  width=%.0f", g.strip.SelectedIndex(), g.strip.ContentOffset(), g.strip.ContentWidth()),
		fmt.Sprintf("indicator: x=%.1f  hidden=%t", ind.CenterX, ind.Hidden),
		fmt.Sprintf("fps: %.0f  tps: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	if g.Remote == nil {
		return lines
	}
	now := time.Now()
	for _, ev := range g.Remote.Recent() {
		age := now.Sub(ev.Time).Truncate(time.Millisecond)
		lines = append(lines, fmt.Sprintf("remote: %s code=%-4d %s ago", ev.Device, ev.Code, age))
	}
	return lines
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.setBounds(g.Width, g.Height)
	}
	return g.Width, g.Height
}
