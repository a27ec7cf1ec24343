// The ResumeFinder bot: collects search parameters per chat through a
// reply keyboard and runs the pipeline on the find commands.

package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/finder"
	"go-resume-finder/internal/report"
	"go-resume-finder/internal/resume"
	"go-resume-finder/internal/searcher"
)

const (
	buttonPosition   = "Посада"
	buttonLocation   = "Локація"
	buttonExperience = "Досвід"
	buttonSalaryFrom = "Зарплата від"
	buttonSalaryTo   = "Зарплата до"
	buttonKeywords   = "Ключові слова"

	msgStartFirst    = "Спочатку виконайте команду /start"
	msgBadCriteria   = "Посада кандидата не вказана або введені некоректні дані в інших параметрах"
	msgNotFound      = "Резюме кандидатів за заданими параметрами не знайдено!"
	msgSearchFailed  = "Під час пошуку сталася помилка, спробуйте ще раз."
	msgParamsCleared = "Параметри очищено"
)

const startMessage = `<b>Вас вітає бот ResumeFinder🔍</b>

Я допоможу Вам знайти кандидатів з <b>релевантними резюме</b> на таких платформах, як work.ua та robota.ua.
Використовуйте кнопки розміщенні на клавіатурі👇 для того, щоб вказати параметри пошуку🔍.
<b>Обов'язково</b> вкажіть посаду кандидата. Також вкажіть інші параметри, що допоможуть звузити коло пошуку.
Вказані ключові слова допоможуть оцінити релевантність резюме кандидата.

/help - щоб дізнатись усі доступні команди.`

const helpMessage = `<b>Доступні команди</b>

/start - Команда щоб розпочати роботу з ботом.
/help - Команда щоб відобразити список усіх доступних команд та їх короткий опис.
/check - Команда щоб вивести задані параметри для пошуку резюме.
/clear - Команда щоб очистити задані параметри.
/find_on_work - Команда щоб виконати пошук релевантних резюме за попередньо заданими параметрами на сайті work.ua.
/find_on_robota - Команда щоб виконати пошук релевантних резюме за попередньо заданими параметрами на сайті robota.ua.
/find_on_all - Команда щоб виконати пошук релевантних резюме за попередньо заданими параметрами на обох платформах.

Перед пошуком резюме <b>обов'язково введіть параметри</b> для пошуку.
Для цього використайте спеціальні кнопки на клавіатурі або напишіть вручну, наприклад, <i>Посада</i>,
що буде сигналізувати про те, що Ви хочете вказати даний параметр.

<b>Вказуйте ключові слова та навички</b>, чим більше тим краще, це дозволить виділити найбільш релевантні резюме.`

type Bot struct {
	api      *tgbotapi.BotAPI
	finder   *finder.Finder
	sessions *SessionStore
	log      *zap.SugaredLogger
}

func New(token string, f *finder.Finder, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:      api,
		finder:   f,
		sessions: NewSessionStore(),
		log:      log,
	}, nil
}

// Run polls for updates until the context is cancelled. Updates are
// handled one at a time; a running search blocks the chat, which matches
// the sequential pipeline underneath.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.log.Infow("bot started", "username", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if !msg.IsCommand() {
		b.handleText(chatID, msg.Text)
		return
	}

	switch msg.Command() {
	case "start":
		b.handleStart(chatID)
	case "help":
		b.send(chatID, helpMessage)
	case "check":
		b.handleCheck(chatID)
	case "clear":
		b.handleClear(chatID)
	case "find_on_work":
		b.handleFind(ctx, chatID, finder.SiteWorkUa)
	case "find_on_robota":
		b.handleFind(ctx, chatID, finder.SiteRobotaUa)
	case "find_on_all":
		b.handleFind(ctx, chatID, finder.SiteWorkUa)
		b.handleFind(ctx, chatID, finder.SiteRobotaUa)
	}
}

func (b *Bot) handleStart(chatID int64) {
	b.sessions.Start(chatID)

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonPosition),
			tgbotapi.NewKeyboardButton(buttonLocation),
			tgbotapi.NewKeyboardButton(buttonExperience),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonSalaryFrom),
			tgbotapi.NewKeyboardButton(buttonSalaryTo),
			tgbotapi.NewKeyboardButton(buttonKeywords),
		),
	)
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, startMessage)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warnw("failed to send message", "chat", chatID, "error", err)
	}
}

func (b *Bot) handleCheck(chatID int64) {
	session, ok := b.sessions.Get(chatID)
	if !ok {
		b.send(chatID, msgStartFirst)
		return
	}

	f := session.Fields
	b.send(chatID, fmt.Sprintf(`<b>Параметри пошуку резюме</b>:
Позиція: <i>%s</i>
Локація: <i>%s</i>
Досвід: <i>%s</i>
Зарплата (від): <i>%s</i>
Зарплата (до): <i>%s</i>
Ключові слова: <i>%s</i>`,
		orDefault(f.Position, "Не вказана"),
		orDefault(f.Location, "Не вказана"),
		orDefault(f.Experience, "Не вказаний"),
		orDefault(f.SalaryFrom, "Не вказана"),
		orDefault(f.SalaryTo, "Не вказана"),
		orDefault(f.Keywords, "Не вказані"),
	))
}

func (b *Bot) handleClear(chatID int64) {
	if !b.sessions.Clear(chatID) {
		b.send(chatID, msgStartFirst)
		return
	}
	b.send(chatID, msgParamsCleared)
}

func (b *Bot) handleFind(ctx context.Context, chatID int64, site string) {
	session, ok := b.sessions.Get(chatID)
	if !ok {
		b.send(chatID, msgStartFirst)
		return
	}

	params, err := criteria.Parse(session.Fields)
	if err != nil {
		var vErr *criteria.ValidationError
		if errors.As(err, &vErr) {
			b.send(chatID, msgBadCriteria)
			return
		}
		b.send(chatID, msgSearchFailed)
		return
	}

	b.send(chatID, fmt.Sprintf("Шукаємо кандидатів на %s, це може зайняти певний час.", site))

	var ranked []resume.Ranked
	switch site {
	case finder.SiteWorkUa:
		ranked, err = b.finder.FindOnWork(ctx, params)
	case finder.SiteRobotaUa:
		ranked, err = b.finder.FindOnRobota(ctx, params)
	}
	if err != nil {
		if errors.Is(err, searcher.ErrResumeNotFound) {
			b.send(chatID, msgNotFound)
			return
		}
		b.log.Errorw("search failed", "site", site, "error", err)
		b.send(chatID, msgSearchFailed)
		return
	}

	b.send(chatID, report.SiteHeader(site))
	for i, r := range ranked {
		b.send(chatID, report.Candidate(i+1, r))
	}
}

// handleText drives the parameter collection state machine: a button press
// selects the field, the following message fills it.
func (b *Bot) handleText(chatID int64, text string) {
	session, ok := b.sessions.Get(chatID)
	if !ok {
		b.send(chatID, msgStartFirst)
		return
	}

	if session.Pending != "" {
		b.setField(session, chatID, text)
		return
	}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case strings.ToLower(buttonPosition):
		session.Pending = "position"
		b.send(chatID, "Введіть назву посади на яку Ви шукаєте кандидата")
	case strings.ToLower(buttonLocation):
		session.Pending = "location"
		b.send(chatID, "Введіть назву міста")
	case strings.ToLower(buttonSalaryFrom):
		session.Pending = "salary_from"
		b.send(chatID, fmt.Sprintf(
			"Введіть мінімальне значення очікуваної зарплати кандидата в грн. Доступні значення: %v",
			criteria.SalaryValues()))
	case strings.ToLower(buttonSalaryTo):
		session.Pending = "salary_to"
		b.send(chatID, fmt.Sprintf(
			"Введіть максимальне значення очікуваної зарплати кандидата в грн. Доступні значення: %v",
			criteria.SalaryValues()))
	case strings.ToLower(buttonExperience):
		session.Pending = "experience"
		b.send(chatID, "Введіть досвід кандидата у роках")
	case strings.ToLower(buttonKeywords):
		session.Pending = "keywords"
		b.send(chatID, "Введіть необхідні навички кандидата та ключові слова в резюме, перелік через кому")
	}
}

func (b *Bot) setField(session *Session, chatID int64, text string) {
	switch session.Pending {
	case "position":
		session.Fields.Position = text
		b.send(chatID, "Посада кандидата: "+text)
	case "location":
		session.Fields.Location = text
		b.send(chatID, "Місто пошуку: "+text)
	case "salary_from":
		session.Fields.SalaryFrom = text
		b.send(chatID, "Зарплатні очікування (від): "+text)
	case "salary_to":
		session.Fields.SalaryTo = text
		b.send(chatID, "Зарплатні очікування (до): "+text)
	case "experience":
		session.Fields.Experience = text
		b.send(chatID, "Досвід роботи кандидата: "+text)
	case "keywords":
		session.Fields.Keywords = text
		b.send(chatID, "Навички кандидата та ключові слова в резюме: "+text)
	}
	session.Pending = ""
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warnw("failed to send message", "chat", chatID, "error", err)
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
