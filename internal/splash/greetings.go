package splash

var defaultGreetings = []string{
	"Hello", "Bonjour", "Hola", "Ciao", "Hallo", "Olá", "Привет", "Привіт",
	"Cześć", "Ahoj", "Hej", "Hei", "Halló", "Tere", "Labas", "Sveiki",
	"Szia", "Bună", "Здравей", "Zdravo", "Γειά σου", "Merhaba", "שלום", "مرحبا",
	"سلام", "नमस्ते", "নমস্কার", "வணக்கம்", "నమస్కారం", "ನಮಸ್ಕಾರ", "ഹലോ", "ආයුබෝවන්",
	"สวัสดี", "Xin chào", "Halo", "Kamusta", "你好", "こんにちは", "안녕하세요", "Сайн уу",
	"Сәлем", "Salom", "Բարեւ", "გამარჯობა", "Jambo", "Sawubona", "Habari", "Aloha",
	"Kia ora", "Dia dhuit", "Helo", "Saluton",
}

// DefaultGreetings возвращает копию встроенного списка приветствий.
func DefaultGreetings() []string {
	out := make([]string, len(defaultGreetings))
	copy(out, defaultGreetings)
	return out
}
