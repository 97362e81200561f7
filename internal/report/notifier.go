package report

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Min interval between any two Telegram messages to the same chat to
// avoid 429 Too Many Requests (~30/min limit).
const telegramSendInterval = 2 * time.Second

// telegramMessageLimit is Telegram's hard cap per message; longer
// reports are chunked on line boundaries.
const telegramMessageLimit = 4096

// Notifier delivers report text to a Telegram chat. Sends go through a
// buffered queue drained by a background worker so a slow Telegram API
// never blocks the pipeline.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	mu       sync.Mutex
	lastSend time.Time

	queue  chan string
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewNotifier creates a Telegram notifier, verifying the credential
// with a GetMe round-trip. Returns nil on failure; a nil Notifier is
// safe to use and drops messages (report generation still works, the
// delivery leg is just absent).
func NewNotifier(token string, chatID int64) *Notifier {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to get bot info", "error", err)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	n := &Notifier{
		bot:    bot,
		chatID: chatID,
		queue:  make(chan string, 16),
		ctx:    ctx,
		cancel: cancel,
	}

	n.wg.Add(1)
	go n.messageSender()

	slog.Info("Telegram notifier initialized", "chat_id", chatID)
	return n
}

// Send queues a report for delivery, chunking it to fit Telegram's
// message limit. Safe on a nil notifier.
func (n *Notifier) Send(text string) {
	if n == nil {
		slog.Warn("Telegram notifier not configured, dropping report", "length", len(text))
		return
	}
	for _, chunk := range chunkMessage(text, telegramMessageLimit) {
		select {
		case n.queue <- chunk:
		case <-n.ctx.Done():
			return
		}
	}
}

// Stop drains the queue and stops the background sender.
func (n *Notifier) Stop() {
	if n == nil {
		return
	}
	n.cancel()
	n.wg.Wait()
}

// messageSender runs in background and sends queued messages with
// proper intervals between them.
func (n *Notifier) messageSender() {
	defer n.wg.Done()

	for {
		select {
		case <-n.ctx.Done():
			// Drain remaining messages before exit.
			for {
				select {
				case msg := <-n.queue:
					n.send(msg)
				default:
					return
				}
			}
		case msg := <-n.queue:
			n.send(msg)
		}
	}
}

func (n *Notifier) send(text string) {
	n.mu.Lock()
	if elapsed := time.Since(n.lastSend); elapsed < telegramSendInterval {
		wait := telegramSendInterval - elapsed
		n.mu.Unlock()
		select {
		case <-n.ctx.Done():
			// Still deliver: Stop() promises a drain, and one last
			// send is bounded by the API timeout.
		case <-time.After(wait):
		}
		n.mu.Lock()
	}
	n.lastSend = time.Now()
	n.mu.Unlock()

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		slog.Error("Telegram send failed", "error", err, "length", len(text))
		return
	}
	slog.Info("Telegram send ok", "length", len(text), "queue_length", len(n.queue))
}

// chunkMessage splits text into pieces of at most limit bytes,
// preferring line boundaries so match entries stay intact.
func chunkMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		// A single oversized line is split hard; should not happen
		// with report-shaped content.
		for len(line) > limit {
			chunks = appendChunk(chunks, &current)
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		if current.Len()+len(line)+1 > limit {
			chunks = appendChunk(chunks, &current)
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	return appendChunk(chunks, &current)
}

func appendChunk(chunks []string, b *strings.Builder) []string {
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
		b.Reset()
	}
	return chunks
}
