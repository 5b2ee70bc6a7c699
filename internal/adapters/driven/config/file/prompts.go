package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// defaultPrompts contains embedded default prompts. They are used when user
// files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptChatSystem: `You are the official AI Assistant of Arah Infotech.

RULES:
1. If the user greets you (e.g., "hi", "hello", "hey"), respond with a warm welcome: "👋 Hello! Welcome to Arah Infotech 🤖. I can help you with information about our services, products, or company. What would you like to know?"
2. If the user asks something completely irrelevant (outside of Arah Infotech or greetings), say:
   "I am designed to provide information about Arah Infotech only. Please ask about our services, products, or company! 😊"
3. If the user asks specifically about the company (e.g., "About the company", "Who are you?"), follow this structure:
   ### 🏢 About Arah Infotech
   **[Provide a BRIEF summary of 2-3 sentences about our mission and expertise, using relevant emojis like 🚀 and 🤖].**

   **Do you want more info? (Yes/No)**
4. If the user says "yes" to see more info, provide the FULL comprehensive details using beautiful Markdown (headers, detailed bullet points, and emojis).
5. For ALL other valid questions about services/careers/products, follow this EXACT visual structure:
   ### [Emoji] [Heading Name]
   **Arah Infotech offers a range of (Topic) including:**
   1. 🚀 [Item Name] 📈 ✨
   2. 🤖 [Item Name] 🛠️ 🌐
   3. 📊 [Item Name] 💎 🚀

   **Do you want more info? (Yes/No)**
6. Use Numbered lists (1, 2, 3) for summaries.
7. Use 2-3 rich emojis per list item.
8. Answer ONLY using the provided knowledge.

WEBSITE KNOWLEDGE:
%s`,
}

// PromptStore loads LLM prompts from user-editable files on disk, with
// embedded defaults. A file watcher invalidates the cache when a prompt
// file is edited, so operators can tune the assistant without restarting.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
	watcher   *fsnotify.Watcher
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.sitebot/prompts/.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".sitebot", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// Falls back to the embedded default if the file doesn't exist or the
// store failed to initialise.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	prompt, err := s.loadFromFile(name)
	if err != nil {
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the cache, forcing fresh loads on next access.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]string)
}

// Close stops the file watcher.
func (s *PromptStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// initialise creates the prompt directory, seeds default files and starts
// the change watcher.
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Seed files that don't exist yet so users can discover and edit them.
	for name, content := range defaultPrompts {
		path := s.promptPath(name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("seed prompt %q: %w", name, err)
				return
			}
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// Watching is best-effort; edits then require Reload or restart.
		logger.Warn("Prompt watcher unavailable: %v", err)
		return
	}
	if err := watcher.Add(s.promptDir); err != nil {
		logger.Warn("Prompt watcher failed on %s: %v", s.promptDir, err)
		watcher.Close()
		return
	}
	s.watcher = watcher
	go s.watch(watcher)
}

// watch invalidates cached prompts when their files change on disk.
func (s *PromptStore) watch(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(event.Name), ".txt")
			s.mu.Lock()
			delete(s.cache, name)
			s.mu.Unlock()
			logger.Debug("Prompt %q changed on disk, cache invalidated", name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Prompt watcher error: %v", err)
		}
	}
}

// loadFromFile reads a prompt file from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(s.promptPath(name))
	if err != nil {
		return "", err
	}
	prompt := strings.TrimRight(string(data), "\n")
	if prompt == "" {
		return "", fmt.Errorf("prompt file is empty")
	}
	return prompt, nil
}

// promptPath returns the on-disk location for a prompt name.
func (s *PromptStore) promptPath(name string) string {
	return filepath.Join(s.promptDir, name+".txt")
}
