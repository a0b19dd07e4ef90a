package setlist

import "github.com/hazadus/go-setlist/internal/song"

// Pool хранит все известные песни по названию в порядке первого добавления
type Pool struct {
	titles []string
	songs  map[string]*song.Song
}

func newPool() *Pool {
	return &Pool{
		titles: make([]string, 0),
		songs:  make(map[string]*song.Song),
	}
}

// put добавляет песню или заменяет существующую с тем же названием.
// При замене позиция песни в пуле сохраняется.
func (p *Pool) put(s *song.Song) {
	title := s.Title()
	if _, ok := p.songs[title]; !ok {
		p.titles = append(p.titles, title)
	}
	p.songs[title] = s
}

// Get ищет песню по точному названию (с учетом регистра)
func (p *Pool) Get(title string) (*song.Song, bool) {
	s, ok := p.songs[title]
	return s, ok
}

// Songs возвращает песни пула в порядке добавления
func (p *Pool) Songs() []*song.Song {
	result := make([]*song.Song, len(p.titles))
	for i, title := range p.titles {
		result[i] = p.songs[title]
	}
	return result
}

// Titles возвращает названия песен в порядке добавления
func (p *Pool) Titles() []string {
	result := make([]string, len(p.titles))
	copy(result, p.titles)
	return result
}

// Len возвращает количество песен в пуле
func (p *Pool) Len() int {
	return len(p.titles)
}
