// internal/locale/locale.go

// Package locale holds the user-facing message catalogs and the language
// ⇄ country toggle. Translations live in an x/text message catalog with
// one printer per language; a Locale is a plain value handed to whoever
// renders text, there is no package-global current language.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Language string

const (
	English Language = "en"
	Czech   Language = "cs"
)

func (l Language) tag() language.Tag {
	if l == Czech {
		return language.Czech
	}
	return language.English
}

// Locale pairs a catalog language with the fee-schedule country it
// implies: English prices in USD (US), Czech in CZK (CZ).
type Locale struct {
	Language Language
	Country  string
}

// Default is English / US.
func Default() Locale {
	return Locale{Language: English, Country: "US"}
}

// Toggle flips between the two supported locales.
func (l Locale) Toggle() Locale {
	if l.Language == English {
		return Locale{Language: Czech, Country: "CZ"}
	}
	return Locale{Language: English, Country: "US"}
}

// T looks up a message by key. The catalog falls back to English for an
// untranslated key; a key missing from both languages renders as itself
// so the gap stays visible rather than blank.
func (l Locale) T(key string) string {
	return printers[l.Language].Sprintf(key)
}

var printers = buildPrinters()

func buildPrinters() map[Language]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, msgs := range messages {
		tag := lang.tag()
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	out := make(map[Language]*message.Printer, len(messages))
	for lang := range messages {
		out[lang] = message.NewPrinter(lang.tag(), message.Catalog(b))
	}
	return out
}

// messages is the catalog source, keyed by language then message key.
var messages = map[Language]map[string]string{
	English: {
		"menu_register":       "1 - Register",
		"menu_login":          "2 - Log in",
		"menu_language":       "3 - Switch language",
		"menu_terminate":      "0 - Quit",
		"menu_book":           "1 - Book a slot",
		"menu_topup":          "2 - Add funds",
		"menu_balance":        "3 - Show balance",
		"menu_reservations":   "4 - My reservations",
		"menu_add_record":     "5 - Add exercise record",
		"menu_show_records":   "6 - Show records (sorted)",
		"menu_export_records": "7 - Export records to file",
		"menu_language_in":    "8 - Switch language",
		"menu_cancel":         "9 - Cancel a reservation",
		"menu_help":           "10 - Help",
		"menu_logoff":         "11 - Log off",
		"menu_bad_choice":     "That is not a menu option.",
		"menu_ending":         "Goodbye.",
		"prompt_first_name":   "First name: ",
		"prompt_last_name":    "Last name: ",
		"prompt_gender":       "Gender (M/F): ",
		"prompt_password":     "Password: ",
		"prompt_login_name":   "Name and last name: ",
		"prompt_day":          "Day: ",
		"prompt_month":        "Month: ",
		"prompt_year":         "Year: ",
		"prompt_amount":       "Amount: ",
		"prompt_exercise":     "Exercise: ",
		"prompt_weight":       "Weight: ",
		"prompt_sort":         "Sort 1 - descending, 2 - ascending: ",
		"prompt_price":        "Price per slot: ",
		"msg_registered":      "Account created, you are logged in.",
		"msg_logged_in":       "You are logged in.",
		"msg_logged_out":      "Logged out, data saved.",
		"msg_booked":          "Slot booked",
		"msg_no_funds":        "Not enough funds.",
		"msg_already":         "You already hold this date.",
		"msg_full":            "This date is fully booked",
		"msg_cancelled":       "Reservation cancelled, fee refunded.",
		"msg_nothing_cancel":  "No reservation on that date.",
		"msg_topup_done":      "Funds added.",
		"msg_balance":         "Balance: ",
		"msg_reservations":    "Your reservations: ",
		"msg_record_added":    "Record saved.",
		"msg_record_export":   "Records written to ",
		"msg_user_not_found":  "No such account.",
		"msg_wrong_password":  "Wrong password.",
		"msg_duplicate":       "An account with that name already exists.",
		"msg_bad_input":       "Bad input.",
		"msg_help": "Book and cancel gym slots, keep a cash balance, and track " +
			"your exercise records. Prices are halved for women; switching the " +
			"language also switches the currency.",
	},
	Czech: {
		"menu_register":       "1 - Registrace",
		"menu_login":          "2 - Přihlášení",
		"menu_language":       "3 - Změna jazyka",
		"menu_terminate":      "0 - Konec",
		"menu_book":           "1 - Rezervovat termín",
		"menu_topup":          "2 - Vložit peníze",
		"menu_balance":        "3 - Zůstatek",
		"menu_reservations":   "4 - Moje rezervace",
		"menu_add_record":     "5 - Přidat rekord",
		"menu_show_records":   "6 - Zobrazit rekordy (seřazené)",
		"menu_export_records": "7 - Uložit rekordy do souboru",
		"menu_language_in":    "8 - Změna jazyka",
		"menu_cancel":         "9 - Zrušit rezervaci",
		"menu_help":           "10 - Nápověda",
		"menu_logoff":         "11 - Odhlásit se",
		"menu_bad_choice":     "Neplatná volba.",
		"menu_ending":         "Na shledanou.",
		"prompt_first_name":   "Jméno: ",
		"prompt_last_name":    "Příjmení: ",
		"prompt_gender":       "Pohlaví (M/F): ",
		"prompt_password":     "Heslo: ",
		"prompt_login_name":   "Jméno a příjmení: ",
		"prompt_day":          "Den: ",
		"prompt_month":        "Měsíc: ",
		"prompt_year":         "Rok: ",
		"prompt_amount":       "Částka: ",
		"prompt_exercise":     "Cvik: ",
		"prompt_weight":       "Váha: ",
		"prompt_sort":         "Řazení 1 - sestupně, 2 - vzestupně: ",
		"prompt_price":        "Cena za termín: ",
		"msg_registered":      "Účet vytvořen, jste přihlášeni.",
		"msg_logged_in":       "Jste přihlášeni.",
		"msg_logged_out":      "Odhlášeno, data uložena.",
		"msg_booked":          "Termín rezervován",
		"msg_no_funds":        "Nedostatek peněz.",
		"msg_already":         "Tento den už máte rezervovaný.",
		"msg_full":            "Termín je plně obsazen",
		"msg_cancelled":       "Rezervace zrušena, poplatek vrácen.",
		"msg_nothing_cancel":  "Na tento den žádná rezervace není.",
		"msg_topup_done":      "Peníze vloženy.",
		"msg_balance":         "Zůstatek: ",
		"msg_reservations":    "Vaše rezervace: ",
		"msg_record_added":    "Rekord uložen.",
		"msg_record_export":   "Rekordy zapsány do ",
		"msg_user_not_found":  "Účet nenalezen.",
		"msg_wrong_password":  "Špatné heslo.",
		"msg_duplicate":       "Účet s tímto jménem už existuje.",
		"msg_bad_input":       "Špatný vstup.",
		"msg_help": "Rezervujte a rušte termíny v posilovně, spravujte zůstatek " +
			"a sledujte své rekordy. Ženy platí polovinu; změna jazyka přepíná " +
			"i měnu.",
	},
}
