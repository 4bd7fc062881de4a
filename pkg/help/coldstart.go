package help

// ColdstartYAML is printed by `wikilens quickstart`.
const ColdstartYAML = `# wikilens Quick Start

components:
  serve: "Backend API on :8000, scrapes and caches wiki pages, ranks links with Gemini"
  ui: "Form page on :8080, submits to the backend and renders the output region"
  submit: "One submission from the shell, prints the output region"

environment:
  GEMINI_API_KEY: "Required by serve for relevance ranking (.env is read)"

commands:
  start_backend: |
    wikilens serve --cache-dir .cache

  start_form: |
    wikilens ui --backend http://localhost:8000

  content_only: |
    wikilens submit --wikilink Cat

  content_and_ranking: |
    wikilens submit --wikilink https://en.wikipedia.org/wiki/Cat --yes

  inspect_cache: |
    wikilens db pages
    wikilens db show Cat --content
    wikilens db delete Cat

endpoints:
  process_form: "GET /server/process_form?wikilink=<link>&check=0|1 -> {content}"
  get_relevance_ranked: "GET /server/get_relevance_ranked?wikilink=<link>&check=0|1 -> {relevance_ranked}"

config_file: |
  backend_url: http://localhost:8000
  server_port: 8000
  ui_port: 8080
  db_path: ./wikilens.db
  cache_dir: ./.cache
  cache_ttl: 24h
  rate_limit: 2
  model: gemini-2.0-flash
  cors_origins: ["*"]
`
