package main

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game is the application root. It owns the viewer state, the stores and
// the UI flags, and implements ebiten.Game plus the narrow interfaces the
// input handler and renderer work against.
type Game struct {
	config       Config
	configStatus ConfigLoadResult

	state       *ViewerState
	pageManager PageManager
	store       *Store
	adapter     *ModeAdapter

	renderer            *Renderer
	inputHandler        *InputHandler
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
	thumbnails          *ThumbnailPanel
	swipes              *SwipeTracker

	// UI state
	showHelp        bool
	showInfo        bool
	pageInputMode   bool
	pageInputBuffer string

	overlayMessage     string
	overlayMessageTime time.Time

	lastActivity time.Time
	lastMouseX   int
	lastMouseY   int
	seekDragging bool

	// Bookmark cache for the open document; reloaded on open and toggle.
	hasBookmark  bool
	bookmarkPage int

	// Start screen
	recentEntries    []HistoryEntry
	recentProgress   map[string]string
	startScreenError string

	windowWidth  int
	windowHeight int
	lastSnapshot *RenderStateSnapshot
	needsRedraw  bool
	shouldExit   bool
}

// NewGame wires up the application from a loaded configuration. The store
// may be nil when the database could not be opened; bookmarks and history
// are disabled in that case.
func NewGame(configResult ConfigLoadResult, store *Store) *Game {
	g := &Game{
		config:       configResult.Config,
		configStatus: configResult,
		state:        &ViewerState{},
		store:        store,
		thumbnails:   NewThumbnailPanel(),
		swipes:       &SwipeTracker{},
		lastActivity: time.Now(),
		needsRedraw:  true,
	}

	g.pageManager = NewPageManagerWithPreload(g.config.CacheSize, g.config.PreloadEnabled)
	g.keybindingManager = NewKeybindingManager(g.config.Keybindings)
	g.mousebindingManager = NewMousebindingManager(GetDefaultMousebindings(), GetDefaultMouseSettings())
	g.inputHandler = NewInputHandler(g, g, g.keybindingManager, func() *ModeAdapter { return g.adapter })
	g.renderer = NewRenderer(g)

	g.refreshRecentEntries()
	return g
}

func (g *Game) controlsTimeout() time.Duration {
	secs := g.config.ControlsTimeout
	if secs <= 0 {
		secs = 3
	}
	return time.Duration(secs * float64(time.Second))
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.windowWidth = outsideWidth
	g.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// ConfigForSave returns the configuration with the current window geometry
// and toggles folded in, for persisting at shutdown.
func (g *Game) ConfigForSave() Config {
	config := g.config
	config.Fullscreen = ebiten.IsFullscreen()
	if !config.Fullscreen {
		if w, h := ebiten.WindowSize(); w >= minWidth && h >= minHeight {
			config.WindowWidth = w
			config.WindowHeight = h
		}
	}
	return config
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.shouldExit {
		g.pageManager.StopPreload()
		return ebiten.Termination
	}

	handled := g.handleDroppedFiles()

	g.trackActivity()

	if g.inputHandler.HandleInput() {
		handled = true
	}
	if g.handleMouse() {
		handled = true
	}
	if g.handleSwipe() {
		handled = true
	}

	snapshot := NewRenderStateSnapshot(g, g.windowWidth, g.windowHeight)
	if handled || !snapshot.Equals(g.lastSnapshot, g.messageTimeout()) {
		g.needsRedraw = true
	}
	g.lastSnapshot = snapshot

	return nil
}

// Draw implements ebiten.Game. Drawing is skipped while nothing changed;
// the screen is not cleared between frames so the last frame persists.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.needsRedraw {
		return
	}
	g.needsRedraw = false

	g.renderer.Draw(screen)
	if g.IsViewerActive() && g.thumbnails.IsVisible() {
		g.thumbnails.Draw(screen, g.state, g.pageManager, g.renderer.font(13))
	}
}

func (g *Game) messageTimeout() time.Duration {
	secs := g.config.MessageTimeout
	if secs <= 0 {
		secs = 2
	}
	return time.Duration(secs * float64(time.Second))
}

// trackActivity resets the controls auto-hide timer on any user input.
func (g *Game) trackActivity() {
	mx, my := ebiten.CursorPosition()
	active := mx != g.lastMouseX || my != g.lastMouseY
	g.lastMouseX, g.lastMouseY = mx, my

	if !active {
		if keys := inpututil.AppendJustPressedKeys(nil); len(keys) > 0 {
			active = true
		}
	}
	if !active {
		if _, wy := ebiten.Wheel(); wy != 0 {
			active = true
		}
	}
	if !active {
		for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle, ebiten.MouseButtonRight} {
			if inpututil.IsMouseButtonJustPressed(b) {
				active = true
				break
			}
		}
	}
	if !active {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			active = true
		}
	}

	if active {
		g.lastActivity = time.Now()
	}
}

// Mouse handling

func (g *Game) handleMouse() bool {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	handled := false

	wheelConsumed := false
	if g.IsViewerActive() && wheelY != 0 {
		cells := ThumbnailCells(g.state.Pages)
		if g.thumbnails.HandleWheel(cells, mx, g.windowWidth, g.windowHeight, wheelY) {
			wheelConsumed = true
			handled = true
		}
	}

	// Bound mouse actions (wheel paging, middle click, modifier clicks,
	// double click). Wheel paging is skipped while the thumbnail panel
	// swallowed the wheel.
	for _, def := range actionDefinitions {
		if len(def.MouseActions) == 0 {
			continue
		}
		if wheelConsumed && (def.Name == "next" || def.Name == "previous") {
			continue
		}
		if g.mousebindingManager.CheckAction(def.Name) {
			if g.mousebindingManager.ExecuteAction(def.Name, g, g) {
				handled = true
			}
		}
	}

	if g.handleSeekDrag(mx) {
		handled = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.handleLeftPress(mx, my) {
			handled = true
		}
	}

	return handled
}

// handleLeftPress dispatches a plain left click by screen region.
func (g *Game) handleLeftPress(mx, my int) bool {
	// Clicks with modifiers belong to the mouse bindings.
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyAlt) {
		return false
	}

	if !g.IsViewerActive() {
		return g.handleStartScreenClick(mx, my)
	}

	if g.thumbnails.IsVisible() {
		cells := ThumbnailCells(g.state.Pages)
		if idx, ok := g.thumbnails.HandleClick(cells, mx, my, g.windowWidth); ok {
			g.jumpToPageIndex(idx)
			return true
		}
		if mx >= g.windowWidth-thumbPanelWidth {
			return false
		}
	}

	if g.AreControlsVisible() {
		if bx, by, bw, bh := controlsBarArea(g.windowWidth, g.windowHeight); pointInArea(mx, my, bx, by, bw, bh) {
			return g.handleControlsClick(mx, my)
		}
		if bx, by, bw, bh := bookmarkStarArea(g.windowWidth, g.windowHeight); pointInArea(mx, my, bx, by, bw, bh) {
			g.ToggleBookmark()
			return true
		}
	}

	// Screen halves page; which half advances depends on the reading
	// direction, so the adapter decides.
	if g.adapter == nil {
		return false
	}
	zone := ZoneRight
	if mx < g.windowWidth/2 {
		zone = ZoneLeft
	}
	g.NavigateDelta(g.adapter.ZoneDelta(zone))
	return true
}

func (g *Game) handleControlsClick(mx, my int) bool {
	if x, y, w, h := leftButtonArea(g.windowWidth, g.windowHeight); pointInArea(mx, my, x, y, w, h) {
		g.NavigateDelta(g.adapter.ZoneDelta(ZoneLeft))
		return true
	}
	if x, y, w, h := rightButtonArea(g.windowWidth, g.windowHeight); pointInArea(mx, my, x, y, w, h) {
		g.NavigateDelta(g.adapter.ZoneDelta(ZoneRight))
		return true
	}
	if x, y, w, h := seekBarArea(g.windowWidth, g.windowHeight); pointInArea(mx, my, x, y-6, w, h+12) {
		g.seekDragging = true
		g.applySeekPosition(mx)
		return true
	}
	return true // swallow clicks on the bar background
}

func (g *Game) handleSeekDrag(mx int) bool {
	if !g.seekDragging {
		return false
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.seekDragging = false
		return false
	}
	return g.applySeekPosition(mx)
}

// applySeekPosition maps a cursor x to a seek value and jumps there.
func (g *Game) applySeekPosition(mx int) bool {
	if g.adapter == nil {
		return false
	}
	sx, _, sw, _ := seekBarArea(g.windowWidth, g.windowHeight)
	value := (float64(mx) - sx) / sw * 100
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	spread := g.adapter.SeekValueToSpread(value, g.state.SpreadCount())
	if spread == g.state.CurrentSpread() {
		return false
	}
	g.JumpToSpread(spread)
	return true
}

func (g *Game) handleStartScreenClick(mx, my int) bool {
	if len(g.recentEntries) > 0 {
		if x, y, w, h := recentClearArea(g.windowWidth); pointInArea(mx, my, x, y, w, h) {
			g.clearHistory()
			return true
		}
	}
	for i := range g.recentEntries {
		if x, y, w, h := recentDeleteArea(i, g.windowWidth); pointInArea(mx, my, x, y, w, h) {
			g.deleteHistoryEntry(g.recentEntries[i])
			return true
		}
		if x, y, w, h := recentRowArea(i, g.windowWidth); pointInArea(mx, my, x, y, w, h) {
			g.openFromHistory(g.recentEntries[i])
			return true
		}
	}
	return false
}

func (g *Game) deleteHistoryEntry(entry HistoryEntry) {
	if g.store == nil {
		return
	}
	if err := g.store.DeleteHistory(entry.FileID); err != nil {
		debugLog("History delete failed: %v", err)
		return
	}
	g.renderer.InvalidateRecentThumbs()
	g.refreshRecentEntries()
}

func (g *Game) clearHistory() {
	if g.store == nil {
		return
	}
	if err := g.store.ClearHistory(); err != nil {
		debugLog("History clear failed: %v", err)
		return
	}
	g.renderer.InvalidateRecentThumbs()
	g.refreshRecentEntries()
}

func (g *Game) handleSwipe() bool {
	dx, ok := g.swipes.Update()
	if !ok || !g.IsViewerActive() || g.adapter == nil {
		return false
	}
	g.NavigateDelta(g.adapter.SwipeDelta(dx))
	return true
}

// Dropped files

func (g *Game) handleDroppedFiles() bool {
	dropped := ebiten.DroppedFiles()
	if dropped == nil {
		return false
	}

	var files []DocumentFile
	var names []string
	var topLevel string
	var singleInfo fs.FileInfo

	err := fs.WalkDir(dropped, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if topLevel == "" && p != "." {
				topLevel = p
			}
			return nil
		}
		data, err := fs.ReadFile(dropped, p)
		if err != nil {
			debugLog("Failed to read dropped file %s: %v", p, err)
			return nil
		}
		name := p
		if i := strings.LastIndex(p, "/"); i >= 0 {
			name = p[i+1:]
		}
		files = append(files, DocumentFile{Name: name, Data: data})
		names = append(names, name)
		if info, err := d.Info(); err == nil {
			singleInfo = info
		}
		return nil
	})
	if err != nil || len(files) == 0 {
		return false
	}

	docType, ok := DetectDocumentType(names)
	if !ok {
		g.startScreenError = "No viewable files in the dropped items"
		return true
	}

	var identity FileIdentity
	if len(files) == 1 {
		size := int64(len(files[0].Data))
		var mod int64
		if singleInfo != nil {
			size = singleInfo.Size()
			mod = singleInfo.ModTime().UnixMilli()
		}
		identity = FileIdentity{ID: GenerateFileID(files[0].Name, size, mod), Name: files[0].Name, Type: docType}
	} else {
		dirName := topLevel
		if dirName == "" {
			dirName = "dropped"
		}
		identity = FileIdentity{ID: GenerateDirectoryID(dirName, names), Name: dirName, Type: docType}
	}

	doc, err := OpenStored(identity, files, g.config.SortMethod)
	if err != nil {
		g.startScreenError = fmt.Sprintf("Failed to open %s: %v", identity.Name, err)
		debugLog("Drop open failed: %v", err)
		return true
	}
	g.OpenDocument(doc)
	return true
}

// Document lifecycle

// OpenDocument installs a resolved document, restores its bookmark and
// records it in the history.
func (g *Game) OpenDocument(doc *Document) {
	g.state.Open(doc.Pages, doc.Identity)
	g.pageManager.SetPages(doc.Pages, g.state.Generation())
	g.adapter = NewModeAdapter(doc.Identity.Type)

	g.showHelp = false
	g.pageInputMode = false
	g.pageInputBuffer = ""
	g.thumbnails.Hide()
	g.startScreenError = ""
	g.seekDragging = false
	g.swipes.Reset()

	g.reloadBookmark()
	if g.hasBookmark && g.bookmarkPage > 0 && g.bookmarkPage < len(doc.Pages) {
		g.state.JumpToPage(g.bookmarkPage)
		g.ShowOverlayMessage(fmt.Sprintf("Resumed at spread %d", g.state.CurrentSpread()))
	}

	g.recordHistory(doc)
	g.pageManager.StartPreload(g.state.CurrentIndex, NavigationJump)
	g.lastActivity = time.Now()
	g.needsRedraw = true

	debugLog("Opened %s (%s, %d pages)", doc.Identity.Name, doc.Identity.Type, len(doc.Pages))
}

func (g *Game) reloadBookmark() {
	g.hasBookmark = false
	g.bookmarkPage = 0
	if g.store == nil {
		return
	}
	bm, err := g.store.GetBookmark(g.state.File.ID)
	if err != nil {
		debugLog("Bookmark lookup failed: %v", err)
		return
	}
	if bm != nil {
		g.hasBookmark = true
		g.bookmarkPage = bm.CurrentPage
	}
}

func (g *Game) recordHistory(doc *Document) {
	if g.store == nil || len(doc.Files) == 0 {
		return
	}

	var thumb []byte
	for _, page := range doc.Pages {
		if page.Blank {
			continue
		}
		img, err := decodePage(page)
		if err != nil {
			debugLog("Thumbnail decode failed for %s: %v", page.Name, err)
			break
		}
		thumb, err = EncodeThumbnailPNG(img, 256, 256)
		if err != nil {
			debugLog("Thumbnail encode failed: %v", err)
		}
		break
	}

	entry := &HistoryEntry{
		FileID:     doc.Identity.ID,
		FileName:   doc.Identity.Name,
		FileType:   doc.Identity.Type,
		Thumbnail:  thumb,
		TotalPages: len(doc.Pages),
		LastAccess: time.Now().UnixMilli(),
	}
	if err := g.store.AddHistory(entry, doc.Files); err != nil {
		debugLog("History update failed: %v", err)
		return
	}
	g.renderer.InvalidateRecentThumbs()
	g.refreshRecentEntries()
}

func (g *Game) refreshRecentEntries() {
	if g.store == nil {
		g.recentEntries = nil
		g.recentProgress = nil
		return
	}
	entries, err := g.store.ListHistory()
	if err != nil {
		debugLog("History list failed: %v", err)
		return
	}
	g.recentEntries = entries

	progress := make(map[string]string, len(entries))
	for _, e := range entries {
		b, err := g.store.GetBookmark(e.FileID)
		if err != nil || b == nil {
			continue
		}
		progress[e.FileID] = fmt.Sprintf("bookmarked at spread %d of %d",
			SpreadNumber(b.CurrentPage), b.TotalPages)
	}
	g.recentProgress = progress
}

func (g *Game) openFromHistory(entry HistoryEntry) {
	if g.store == nil {
		return
	}
	files, err := g.store.GetHistoryFiles(entry.FileID)
	if err != nil || len(files) == 0 {
		g.startScreenError = fmt.Sprintf("Stored data for %s is missing", entry.FileName)
		if err := g.store.DeleteHistory(entry.FileID); err != nil {
			debugLog("History delete failed: %v", err)
		}
		g.renderer.InvalidateRecentThumbs()
		g.refreshRecentEntries()
		return
	}

	identity := FileIdentity{ID: entry.FileID, Name: entry.FileName, Type: entry.FileType}
	doc, err := OpenStored(identity, files, g.config.SortMethod)
	if err != nil {
		g.startScreenError = fmt.Sprintf("Failed to reopen %s: %v", entry.FileName, err)
		debugLog("History reopen failed: %v", err)
		return
	}

	if err := g.store.TouchHistory(entry.FileID, time.Now().UnixMilli()); err != nil {
		debugLog("History touch failed: %v", err)
	}
	g.OpenDocument(doc)
}

func (g *Game) jumpToPageIndex(pageIndex int) {
	g.state.JumpToPage(pageIndex)
	g.pageManager.StartPreload(g.state.CurrentIndex, NavigationJump)
	if g.thumbnails.IsVisible() {
		cells := ThumbnailCells(g.state.Pages)
		g.thumbnails.EnsureVisible(cells, g.state.CurrentIndex, g.windowHeight)
	}
}

// InputActions implementation

func (g *Game) Exit() {
	g.shouldExit = true
}

// CloseDocument returns to the start screen; on the start screen it quits.
func (g *Game) CloseDocument() {
	if !g.IsViewerActive() {
		g.Exit()
		return
	}
	g.state.Reset()
	g.pageManager.SetPages(nil, g.state.Generation())
	g.adapter = nil
	g.thumbnails.Hide()
	g.showHelp = false
	g.pageInputMode = false
	g.pageInputBuffer = ""
	g.hasBookmark = false
	g.overlayMessage = ""
	g.refreshRecentEntries()
	g.needsRedraw = true
}

func (g *Game) ToggleHelp() {
	g.showHelp = !g.showHelp
}

func (g *Game) ToggleInfo() {
	g.showInfo = !g.showInfo
}

func (g *Game) ToggleThumbnails() {
	if !g.IsViewerActive() {
		return
	}
	g.thumbnails.Toggle()
	if g.thumbnails.IsVisible() {
		cells := ThumbnailCells(g.state.Pages)
		g.thumbnails.EnsureVisible(cells, g.state.CurrentIndex, g.windowHeight)
	}
}

func (g *Game) ToggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}

func (g *Game) EnterPageInputMode() {
	if !g.IsViewerActive() {
		return
	}
	g.pageInputMode = true
	g.pageInputBuffer = ""
}

func (g *Game) ExitPageInputMode() {
	g.pageInputMode = false
	g.pageInputBuffer = ""
}

func (g *Game) ProcessPageInput() {
	buffer := g.pageInputBuffer
	g.ExitPageInputMode()

	spread, err := strconv.Atoi(buffer)
	if err != nil {
		return
	}
	g.JumpToSpread(spread)
}

func (g *Game) UpdatePageInputBuffer(buffer string) {
	g.pageInputBuffer = buffer
}

// CycleSortMethod switches the sort order and re-sorts the open document.
func (g *Game) CycleSortMethod() {
	g.config.SortMethod = (g.config.SortMethod + 1) % 3
	g.ShowOverlayMessage(fmt.Sprintf("Sort: %s", getSortMethodName(g.config.SortMethod)))

	if !g.IsViewerActive() || g.state.File.Type == DocTypePDF {
		return
	}

	// Strip the offset sentinel, re-sort the real pages, reapply nothing;
	// the reader starts over from the first spread in the new order.
	pages := make([]PageSource, 0, len(g.state.Pages))
	for _, p := range g.state.Pages {
		if !p.Blank {
			pages = append(pages, p)
		}
	}
	pages = sortPages(pages, g.config.SortMethod)

	g.state.Pages = pages
	g.state.CurrentIndex = 0
	g.state.OffsetEnabled = false
	g.pageManager.SetPages(pages, g.state.Generation())
	g.pageManager.StartPreload(0, NavigationJump)
}

func (g *Game) NavigateNext() {
	g.NavigateDelta(spreadStep)
}

func (g *Game) NavigatePrevious() {
	g.NavigateDelta(-spreadStep)
}

func (g *Game) NavigateDelta(delta int) {
	if !g.IsViewerActive() {
		return
	}
	if !g.state.Navigate(delta) {
		return
	}
	direction := NavigationForward
	if delta < 0 {
		direction = NavigationBackward
	}
	g.pageManager.StartPreload(g.state.CurrentIndex, direction)
	if g.thumbnails.IsVisible() {
		cells := ThumbnailCells(g.state.Pages)
		g.thumbnails.EnsureVisible(cells, g.state.CurrentIndex, g.windowHeight)
	}
}

func (g *Game) JumpToSpread(spread int) {
	if !g.IsViewerActive() {
		return
	}
	g.state.SeekToSpread(spread)
	g.pageManager.StartPreload(g.state.CurrentIndex, NavigationJump)
	if g.thumbnails.IsVisible() {
		cells := ThumbnailCells(g.state.Pages)
		g.thumbnails.EnsureVisible(cells, g.state.CurrentIndex, g.windowHeight)
	}
}

// ToggleOffset shifts the spread alignment by one page while keeping the
// same spread number on screen.
func (g *Game) ToggleOffset() {
	if !g.IsViewerActive() {
		return
	}
	g.state.ToggleOffset()
	g.pageManager.SetPages(g.state.Pages, g.state.Generation())
	g.pageManager.StartPreload(g.state.CurrentIndex, NavigationJump)
	if g.state.OffsetEnabled {
		g.ShowOverlayMessage("Spread offset on")
	} else {
		g.ShowOverlayMessage("Spread offset off")
	}
}

// ToggleBookmark sets the bookmark to the current page, or clears it when
// it already points here.
func (g *Game) ToggleBookmark() {
	if !g.IsViewerActive() || g.store == nil {
		return
	}

	b := &Bookmark{
		FileID:      g.state.File.ID,
		FileName:    g.state.File.Name,
		CurrentPage: g.state.CurrentIndex,
		TotalPages:  g.state.SpreadCount(),
		FileType:    g.state.File.Type,
		Timestamp:   time.Now().UnixMilli(),
	}
	exists, err := g.store.ToggleBookmark(b)
	if err != nil {
		debugLog("Bookmark toggle failed: %v", err)
		g.ShowOverlayMessage("Bookmark update failed")
		return
	}

	g.hasBookmark = exists
	g.bookmarkPage = b.CurrentPage
	if exists {
		g.ShowOverlayMessage(fmt.Sprintf("Bookmarked spread %d", g.state.CurrentSpread()))
	} else {
		g.ShowOverlayMessage("Bookmark removed")
	}
}

func (g *Game) ShowOverlayMessage(message string) {
	g.overlayMessage = message
	g.overlayMessageTime = time.Now()
}

func (g *Game) GetCurrentIndex() int {
	return g.state.CurrentIndex
}

func (g *Game) GetSpreadCount() int {
	return g.state.SpreadCount()
}

// InputState implementation

func (g *Game) IsInPageInputMode() bool {
	return g.pageInputMode
}

func (g *Game) GetPageInputBuffer() string {
	return g.pageInputBuffer
}

// RenderState implementation

func (g *Game) IsViewerActive() bool {
	return len(g.state.Pages) > 0
}

func (g *Game) GetSpreadImages() (left, right *ebiten.Image) {
	right, left = g.pageManager.GetSpreadImages(g.state.CurrentIndex, g.state.Direction)
	return left, right
}

func (g *Game) GetReadingDirection() ReadingDirection {
	return g.state.Direction
}

func (g *Game) GetDocumentName() string {
	return g.state.File.Name
}

func (g *Game) GetCurrentSpread() int {
	return g.state.CurrentSpread()
}

func (g *Game) GetSeekProgress() float64 {
	if g.adapter == nil {
		return 0
	}
	return g.adapter.SeekProgress(g.state.CurrentSpread(), g.state.SpreadCount())
}

func (g *Game) IsBookmarkActive() bool {
	return g.hasBookmark && g.bookmarkPage == g.state.CurrentIndex
}

func (g *Game) CanGoPrev() bool {
	return g.state.CanGoPrev()
}

func (g *Game) CanGoNext() bool {
	return g.state.CanGoNext()
}

func (g *Game) IsFullscreen() bool {
	return ebiten.IsFullscreen()
}

func (g *Game) IsShowingHelp() bool {
	return g.showHelp
}

func (g *Game) IsShowingInfo() bool {
	return g.showInfo
}

func (g *Game) IsShowingThumbnails() bool {
	return g.thumbnails.IsVisible()
}

func (g *Game) AreControlsVisible() bool {
	if !g.IsViewerActive() {
		return false
	}
	return time.Since(g.lastActivity) < g.controlsTimeout()
}

func (g *Game) GetOverlayMessage() string {
	return g.overlayMessage
}

func (g *Game) GetOverlayMessageTime() time.Time {
	return g.overlayMessageTime
}

func (g *Game) GetRecentEntries() []HistoryEntry {
	return g.recentEntries
}

func (g *Game) GetRecentProgress(fileID string) string {
	return g.recentProgress[fileID]
}

func (g *Game) GetStartScreenError() string {
	return g.startScreenError
}

func (g *Game) GetFontSize() float64 {
	return g.config.HelpFontSize
}

func (g *Game) GetConfigStatus() ConfigLoadResult {
	result := g.configStatus
	result.Config = g.config
	return result
}

func (g *Game) GetKeybindings() map[string][]string {
	return g.keybindingManager.GetKeybindings()
}

func (g *Game) GetMousebindings() map[string][]string {
	return g.mousebindingManager.GetMousebindings()
}

func (g *Game) GetMouseSettings() MouseSettings {
	return g.mousebindingManager.GetSettings()
}
